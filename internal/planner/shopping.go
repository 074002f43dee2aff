package planner

import (
	"math"
	"sort"
)

// ShoppingRow is one consolidated line of the derived shopping list.
type ShoppingRow struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

type shoppingKey struct {
	name string
	unit string
}

// BuildShoppingList reduces every selection across all day cells into a
// consolidated ingredient list. Recipe selections explode into their
// ingredient associations; raw selections contribute their own quantity.
// Accumulation keeps full precision; quantities are rounded to one decimal
// only on emit. Output is sorted by (name, unit); that ordering is part of
// the contract.
func BuildShoppingList(cells []DayCell) []ShoppingRow {
	acc := make(map[shoppingKey]float64)

	for _, cell := range cells {
		for _, sel := range cell.Selections {
			switch {
			case sel.RecipeID != nil && sel.Recipe != nil:
				for _, a := range sel.Recipe.Ingredients {
					if a.Ingredient.ID == 0 {
						continue
					}
					acc[shoppingKey{a.Ingredient.Name, "g"}] += a.QuantityG
				}
			case sel.IngredientID != nil && sel.Ingredient != nil:
				acc[shoppingKey{sel.Ingredient.Name, "g"}] += sel.QuantityG
			}
		}
	}

	rows := make([]ShoppingRow, 0, len(acc))
	for key, qty := range acc {
		rows = append(rows, ShoppingRow{
			Name:     key.name,
			Unit:     key.unit,
			Quantity: math.Round(qty*10) / 10,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].Unit < rows[j].Unit
	})
	return rows
}
