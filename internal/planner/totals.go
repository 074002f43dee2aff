package planner

import (
	"math"

	"homeos/internal/models"
)

// Totals is a derived kcal/price rollup. Kcal is rounded to the nearest
// integer and Price to two decimals, always after summing at full precision.
type Totals struct {
	Kcal  int     `json:"kcal"`
	Price float64 `json:"price"`
}

func roundTotals(kcal, price float64) Totals {
	return Totals{
		Kcal:  int(math.Round(kcal)),
		Price: math.Round(price*100) / 100,
	}
}

// ComputeRecipeTotals derives a recipe's kcal and price from its ingredient
// associations. The result is never cached on the entity; callers recompute
// on every read. Associations whose ingredient row is missing are excluded
// from the sum and reported through the skipped counter.
func ComputeRecipeTotals(assocs []models.RecipeIngredient) (Totals, int) {
	var kcal, price float64
	skipped := 0
	for _, a := range assocs {
		if a.Ingredient.ID == 0 {
			skipped++
			continue
		}
		kcal += (a.QuantityG / 100) * a.Ingredient.Kcal100g
		price += (a.QuantityG / 1000) * a.Ingredient.PriceKg
	}
	return roundTotals(kcal, price), skipped
}

// ComputeDayStats rolls all of a day-cell's selections into one total.
// Recipe selections contribute their derived totals at full precision,
// raw-ingredient selections contribute directly. Selections whose referenced
// row was not resolved are excluded and counted as skipped.
func ComputeDayStats(selections []models.MenuSelection) (Totals, int) {
	var kcal, price float64
	skipped := 0
	for _, sel := range selections {
		switch {
		case sel.RecipeID != nil:
			if sel.Recipe == nil {
				skipped++
				continue
			}
			for _, a := range sel.Recipe.Ingredients {
				if a.Ingredient.ID == 0 {
					skipped++
					continue
				}
				kcal += (a.QuantityG / 100) * a.Ingredient.Kcal100g
				price += (a.QuantityG / 1000) * a.Ingredient.PriceKg
			}
		case sel.IngredientID != nil:
			if sel.Ingredient == nil {
				skipped++
				continue
			}
			kcal += (sel.QuantityG / 100) * sel.Ingredient.Kcal100g
			price += (sel.QuantityG / 1000) * sel.Ingredient.PriceKg
		default:
			skipped++
		}
	}
	return roundTotals(kcal, price), skipped
}
