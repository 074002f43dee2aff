package planner

import "time"

// Weekdays holds the day-cell names in menu order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MealSlots holds the per-day meal subdivisions in display order.
var MealSlots = []string{"Breakfast", "Lunch", "Snack", "Dinner"}

// WeekFormat is the wire format for week identifiers.
const WeekFormat = "2006-01-02"

// NormalizeWeekStart returns the Monday of the ISO week containing t,
// truncated to a pure UTC date.
func NormalizeWeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	t = t.AddDate(0, 0, -offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseWeekStart parses a YYYY-MM-DD week identifier and normalizes it to
// the Monday of its week. Any date inside the week addresses the same week.
func ParseWeekStart(s string) (time.Time, error) {
	t, err := time.Parse(WeekFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeWeekStart(t), nil
}

// PrevWeek and NextWeek compute navigation targets.
func PrevWeek(weekStart time.Time) time.Time { return weekStart.AddDate(0, 0, -7) }
func NextWeek(weekStart time.Time) time.Time { return weekStart.AddDate(0, 0, 7) }

// ValidWeekday reports whether name is one of the seven day-cell names.
func ValidWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// ValidMealSlot reports whether name is a known meal slot.
func ValidMealSlot(name string) bool {
	for _, s := range MealSlots {
		if s == name {
			return true
		}
	}
	return false
}
