package planner

import (
	"testing"

	"homeos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildShoppingListAggregatesAcrossDays(t *testing.T) {
	recipeID := uint(7)
	ingredientID := uint(1)
	riceIng := models.Ingredient{ID: 1, Name: "Rice", Kcal100g: 130, PriceKg: 2}
	recipe := models.Recipe{
		ID: recipeID,
		Ingredients: []models.RecipeIngredient{
			{Ingredient: riceIng, QuantityG: 200},
			{Ingredient: models.Ingredient{ID: 2, Name: "Chicken breast"}, QuantityG: 150},
		},
	}

	cells := []DayCell{
		{Selections: []models.MenuSelection{
			{RecipeID: &recipeID, Recipe: &recipe},
		}},
		{Selections: []models.MenuSelection{
			{IngredientID: &ingredientID, Ingredient: &riceIng, QuantityG: 100},
		}},
	}

	rows := BuildShoppingList(cells)

	// Sorted by name: Chicken breast before Rice; rice consolidated across
	// the recipe and the raw selection.
	assert.Equal(t, []ShoppingRow{
		{Name: "Chicken breast", Unit: "g", Quantity: 150},
		{Name: "Rice", Unit: "g", Quantity: 300},
	}, rows)
}

func TestBuildShoppingListRoundsOnEmitOnly(t *testing.T) {
	ingredientID := uint(1)
	ing := models.Ingredient{ID: 1, Name: "Rice"}

	// Three additions of 33.33g keep full precision until the final round:
	// 99.99 emits as 100.0, not 33.3*3 = 99.9.
	var cells []DayCell
	for i := 0; i < 3; i++ {
		cells = append(cells, DayCell{Selections: []models.MenuSelection{
			{IngredientID: &ingredientID, Ingredient: &ing, QuantityG: 33.33},
		}})
	}

	rows := BuildShoppingList(cells)

	assert.Len(t, rows, 1)
	assert.Equal(t, 100.0, rows[0].Quantity)
}

func TestBuildShoppingListSkipsUnresolvedSelections(t *testing.T) {
	recipeID := uint(9)
	cells := []DayCell{
		{Selections: []models.MenuSelection{
			{RecipeID: &recipeID}, // recipe row missing
		}},
	}

	assert.Empty(t, BuildShoppingList(cells))
}

func TestBuildShoppingListEmptyWeek(t *testing.T) {
	weekStart, _ := ParseWeekStart("2026-08-31")
	cells := BuildWeek(weekStart, nil)

	assert.Empty(t, BuildShoppingList(cells))
}
