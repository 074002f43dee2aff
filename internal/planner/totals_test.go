package planner

import (
	"testing"

	"homeos/internal/models"

	"github.com/stretchr/testify/assert"
)

func rice() models.Ingredient {
	return models.Ingredient{ID: 1, Name: "Rice", Kcal100g: 130, PriceKg: 2}
}

func chicken() models.Ingredient {
	return models.Ingredient{ID: 2, Name: "Chicken breast", Kcal100g: 165, PriceKg: 6}
}

func TestComputeRecipeTotals(t *testing.T) {
	assocs := []models.RecipeIngredient{
		{Ingredient: rice(), QuantityG: 200},
		{Ingredient: chicken(), QuantityG: 150},
	}

	totals, skipped := ComputeRecipeTotals(assocs)

	// 200g rice = 260 kcal / 0.40, 150g chicken = 247.5 kcal / 0.90
	assert.Equal(t, 508, totals.Kcal)
	assert.Equal(t, 1.3, totals.Price)
	assert.Equal(t, 0, skipped)
}

func TestComputeRecipeTotalsOrderIndependent(t *testing.T) {
	forward := []models.RecipeIngredient{
		{Ingredient: rice(), QuantityG: 123.4},
		{Ingredient: chicken(), QuantityG: 87.6},
		{Ingredient: models.Ingredient{ID: 3, Name: "Olive oil", Kcal100g: 884, PriceKg: 8}, QuantityG: 10.5},
	}
	reversed := []models.RecipeIngredient{forward[2], forward[0], forward[1]}

	a, _ := ComputeRecipeTotals(forward)
	b, _ := ComputeRecipeTotals(reversed)

	assert.Equal(t, a, b)
}

func TestComputeRecipeTotalsRoundsAfterSumming(t *testing.T) {
	// Each association contributes 0.333 kcal; per-item rounding would give
	// 0, the correct sum rounds to 1.
	ing := models.Ingredient{ID: 4, Name: "Spice", Kcal100g: 33.3, PriceKg: 0.333}
	assocs := []models.RecipeIngredient{
		{Ingredient: ing, QuantityG: 1},
		{Ingredient: ing, QuantityG: 1},
		{Ingredient: ing, QuantityG: 1},
	}

	totals, _ := ComputeRecipeTotals(assocs)

	assert.Equal(t, 1, totals.Kcal)
}

func TestComputeRecipeTotalsSkipsDanglingIngredients(t *testing.T) {
	assocs := []models.RecipeIngredient{
		{Ingredient: rice(), QuantityG: 100},
		{Ingredient: models.Ingredient{}, QuantityG: 500},
	}

	totals, skipped := ComputeRecipeTotals(assocs)

	assert.Equal(t, 130, totals.Kcal)
	assert.Equal(t, 1, skipped)
}

func TestComputeDayStatsMixedSelections(t *testing.T) {
	recipeID := uint(7)
	ingredientID := uint(1)
	riceIng := rice()
	recipe := models.Recipe{
		ID: recipeID,
		Ingredients: []models.RecipeIngredient{
			{Ingredient: chicken(), QuantityG: 150},
		},
	}

	selections := []models.MenuSelection{
		{MealSlot: "Lunch", RecipeID: &recipeID, Recipe: &recipe},
		{MealSlot: "Dinner", IngredientID: &ingredientID, Ingredient: &riceIng, QuantityG: 200},
	}

	totals, skipped := ComputeDayStats(selections)

	assert.Equal(t, 508, totals.Kcal)
	assert.Equal(t, 1.3, totals.Price)
	assert.Equal(t, 0, skipped)
}

func TestComputeDayStatsSkipsUnresolvedSelections(t *testing.T) {
	recipeID := uint(42)
	selections := []models.MenuSelection{
		{MealSlot: "Lunch", RecipeID: &recipeID}, // recipe row never resolved
		{MealSlot: "Snack"},                      // neither variant set
	}

	totals, skipped := ComputeDayStats(selections)

	assert.Equal(t, 0, totals.Kcal)
	assert.Equal(t, 0.0, totals.Price)
	assert.Equal(t, 2, skipped)
}

func TestComputeDayStatsEmpty(t *testing.T) {
	totals, skipped := ComputeDayStats(nil)

	assert.Equal(t, Totals{}, totals)
	assert.Equal(t, 0, skipped)
}
