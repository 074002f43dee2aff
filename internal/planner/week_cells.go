package planner

import (
	"time"

	"homeos/internal/models"
)

// DayCell is the presentation contract for one weekday: its selections plus
// the recomputed daily totals. Planned distinguishes a day that has a
// persisted menu row (possibly with zero selections) from one that was never
// saved at all.
type DayCell struct {
	Day        string                 `json:"day"`
	Date       time.Time              `json:"date"`
	Planned    bool                   `json:"planned"`
	Selections []models.MenuSelection `json:"selections"`
	Stats      Totals                 `json:"stats"`
}

// BuildWeek arranges persisted menu rows into exactly seven day cells in
// weekday order. Days without a row become empty placeholders with zero
// totals; absence is a valid, displayable state.
func BuildWeek(weekStart time.Time, menus []models.WeeklyMenu) []DayCell {
	byDay := make(map[string]*models.WeeklyMenu, len(menus))
	for i := range menus {
		byDay[menus[i].Day] = &menus[i]
	}

	cells := make([]DayCell, 0, len(Weekdays))
	for i, day := range Weekdays {
		cell := DayCell{
			Day:        day,
			Date:       weekStart.AddDate(0, 0, i),
			Selections: []models.MenuSelection{},
		}
		if m, ok := byDay[day]; ok {
			cell.Planned = true
			cell.Selections = m.Selections
			cell.Stats, _ = ComputeDayStats(m.Selections)
		}
		cells = append(cells, cell)
	}
	return cells
}
