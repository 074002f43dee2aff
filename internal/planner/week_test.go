package planner

import (
	"testing"
	"time"

	"homeos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday stays put", "2026-08-31", "2026-08-31"},
		{"wednesday maps back", "2026-09-02", "2026-08-31"},
		{"sunday maps to its own monday", "2026-09-06", "2026-08-31"},
		{"next monday starts a new week", "2026-09-07", "2026-09-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.Parse(WeekFormat, tt.in)
			assert.NoError(t, err)
			got := NormalizeWeekStart(in)
			assert.Equal(t, tt.want, got.Format(WeekFormat))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestParseWeekStartNormalizes(t *testing.T) {
	got, err := ParseWeekStart("2026-09-03")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-31", got.Format(WeekFormat))
}

func TestParseWeekStartRejectsGarbage(t *testing.T) {
	_, err := ParseWeekStart("not-a-date")
	assert.Error(t, err)
}

func TestWeekNavigation(t *testing.T) {
	monday, _ := ParseWeekStart("2026-08-31")
	assert.Equal(t, "2026-08-24", PrevWeek(monday).Format(WeekFormat))
	assert.Equal(t, "2026-09-07", NextWeek(monday).Format(WeekFormat))
}

func TestValidWeekdayAndMealSlot(t *testing.T) {
	assert.True(t, ValidWeekday("Monday"))
	assert.False(t, ValidWeekday("Funday"))
	assert.True(t, ValidMealSlot("Lunch"))
	assert.False(t, ValidMealSlot("Brunch"))
}

func TestBuildWeekAlwaysSevenCells(t *testing.T) {
	weekStart, _ := ParseWeekStart("2026-08-31")
	cells := BuildWeek(weekStart, nil)

	assert.Len(t, cells, 7)
	for i, cell := range cells {
		assert.Equal(t, Weekdays[i], cell.Day)
		assert.Equal(t, weekStart.AddDate(0, 0, i), cell.Date)
		assert.False(t, cell.Planned)
		assert.NotNil(t, cell.Selections)
		assert.Empty(t, cell.Selections)
		assert.Equal(t, Totals{}, cell.Stats)
	}
}

func TestBuildWeekPlacesPersistedDays(t *testing.T) {
	weekStart, _ := ParseWeekStart("2026-08-31")
	ingredientID := uint(1)
	ing := models.Ingredient{ID: 1, Name: "Rice", Kcal100g: 130, PriceKg: 2}

	menus := []models.WeeklyMenu{
		{
			Day: "Wednesday",
			Selections: []models.MenuSelection{
				{MealSlot: "Lunch", IngredientID: &ingredientID, Ingredient: &ing, QuantityG: 100},
			},
		},
		{Day: "Friday", Selections: []models.MenuSelection{}},
	}

	cells := BuildWeek(weekStart, menus)

	assert.True(t, cells[2].Planned)
	assert.Equal(t, 130, cells[2].Stats.Kcal)

	// A saved day with no selections is still planned, unlike a never-saved one.
	assert.True(t, cells[4].Planned)
	assert.Equal(t, Totals{}, cells[4].Stats)
	assert.False(t, cells[0].Planned)
}
