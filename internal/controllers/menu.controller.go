package controllers

import (
	"log"
	"net/http"
	"time"

	"homeos/internal/models"
	"homeos/internal/planner"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuRepo     repository.MenuRepository
	shoppingRepo repository.ShoppingRepository
}

func NewMenuController(menuRepo repository.MenuRepository, shoppingRepo repository.ShoppingRepository) *MenuController {
	return &MenuController{menuRepo: menuRepo, shoppingRepo: shoppingRepo}
}

type selectionEntry struct {
	MealSlot     string  `json:"meal_slot"`
	RecipeID     *uint   `json:"recipe_id,omitempty"`
	IngredientID *uint   `json:"ingredient_id,omitempty"`
	QuantityG    float64 `json:"quantity_g,omitempty"`
}

type daySelections struct {
	Day        string           `json:"day"`
	Selections []selectionEntry `json:"selections"`
}

type saveWeekRequest struct {
	WeekStart string          `json:"week_start" binding:"required"`
	Days      []daySelections `json:"days" binding:"required"`
}

// weekFromQuery resolves the ?week parameter, defaulting to the current
// week. Whatever date arrives is normalized to its Monday.
func weekFromQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("week")
	if raw == "" {
		return planner.NormalizeWeekStart(time.Now()), true
	}
	week, err := planner.ParseWeekStart(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid week identifier",
			"error":   "Expected an ISO date (YYYY-MM-DD)",
		})
		return time.Time{}, false
	}
	return week, true
}

// GetWeek godoc
// @Summary Get the seven day cells of a week
// @Description Returns one cell per weekday with recomputed daily totals, plus the derived shopping list and navigation weeks. Days never saved appear as empty placeholders.
// @Tags menu
// @Produce json
// @Param week query string false "Any date inside the target week (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Week retrieved successfully"
// @Router /menu [get]
func (mc *MenuController) GetWeek(c *gin.Context) {
	week, ok := weekFromQuery(c)
	if !ok {
		return
	}

	menus, err := mc.menuRepo.FindWeek(currentUserID(c), week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve menu",
			"error":   err.Error(),
		})
		return
	}

	cells := planner.BuildWeek(week, menus)
	shoppingList := planner.BuildShoppingList(cells)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Week retrieved successfully",
		"data": gin.H{
			"week_start":    week.Format(planner.WeekFormat),
			"prev_week":     planner.PrevWeek(week).Format(planner.WeekFormat),
			"next_week":     planner.NextWeek(week).Format(planner.WeekFormat),
			"current_week":  planner.NormalizeWeekStart(time.Now()).Format(planner.WeekFormat),
			"days":          cells,
			"shopping_list": shoppingList,
		},
	})
}

// SaveWeek godoc
// @Summary Replace the selections of a week
// @Description Each submitted day is saved clear-then-insert in its own transaction; malformed selection entries are skipped with a diagnostic while the rest commit. Auto shopping items are regenerated afterwards.
// @Tags menu
// @Accept json
// @Produce json
// @Param week body saveWeekRequest true "Week selections"
// @Success 200 {object} map[string]interface{} "Menu saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /menu [post]
func (mc *MenuController) SaveWeek(c *gin.Context) {
	var req saveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	week, err := planner.ParseWeekStart(req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid week identifier",
			"error":   "Expected an ISO date (YYYY-MM-DD)",
		})
		return
	}

	userID := currentUserID(c)
	skippedTotal := 0

	for _, day := range req.Days {
		if !planner.ValidWeekday(day.Day) {
			log.Printf("menu save user %d: unknown weekday %q skipped", userID, day.Day)
			skippedTotal += len(day.Selections)
			continue
		}

		selections, skipped := buildSelections(day.Selections)
		if skipped > 0 {
			log.Printf("menu save user %d day %s: skipped %d malformed selection(s)", userID, day.Day, skipped)
			skippedTotal += skipped
		}

		if err := mc.menuRepo.ReplaceDaySelections(userID, week, day.Day, selections); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save menu",
				"error":   err.Error(),
			})
			return
		}
	}

	// Rebuild the derived shopping items from the freshly persisted week.
	menus, err := mc.menuRepo.FindWeek(userID, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Menu saved but failed to rebuild shopping list",
			"error":   err.Error(),
		})
		return
	}
	cells := planner.BuildWeek(week, menus)
	rows := planner.BuildShoppingList(cells)

	items := make([]models.ShoppingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.ShoppingItem{
			Name:     row.Name,
			Quantity: row.Quantity,
			Unit:     row.Unit,
		})
	}
	if err := mc.shoppingRepo.ReplaceAutoItems(userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Menu saved but failed to rebuild shopping list",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Menu saved successfully",
		"data": gin.H{
			"week_start":    week.Format(planner.WeekFormat),
			"days":          cells,
			"shopping_list": rows,
			"skipped":       skippedTotal,
		},
	})
}

// buildSelections validates the tagged variants. A valid selection
// references exactly one of recipe or ingredient and names a known meal
// slot; everything else is counted as skipped.
func buildSelections(entries []selectionEntry) ([]models.MenuSelection, int) {
	var selections []models.MenuSelection
	skipped := 0
	for _, e := range entries {
		if !planner.ValidMealSlot(e.MealSlot) {
			skipped++
			continue
		}
		hasRecipe := e.RecipeID != nil && *e.RecipeID != 0
		hasIngredient := e.IngredientID != nil && *e.IngredientID != 0
		if hasRecipe == hasIngredient {
			// Neither or both set: not a valid variant.
			skipped++
			continue
		}
		sel := models.MenuSelection{MealSlot: e.MealSlot}
		if hasRecipe {
			sel.RecipeID = e.RecipeID
		} else {
			if e.QuantityG < 0 {
				skipped++
				continue
			}
			sel.IngredientID = e.IngredientID
			sel.QuantityG = e.QuantityG
		}
		selections = append(selections, sel)
	}
	return selections, skipped
}
