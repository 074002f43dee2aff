package fitness

import (
	"math"

	"homeos/internal/models"
)

// EstimateSetCalories estimates the energy spent on one set. Cardio
// exercises burn rate kcal per minute, everything else rate kcal per rep.
// An unset burn rate contributes nothing.
func EstimateSetCalories(set models.WorkoutSet, exercise models.Exercise) float64 {
	rate := exercise.BurnRate
	if rate == 0 {
		return 0
	}
	if exercise.IsCardio() {
		return rate * float64(set.Time)
	}
	return rate * float64(set.Reps)
}

// SessionCalories sums the per-set estimates for a session, rounded to the
// nearest integer. Sets must carry their preloaded Exercise.
func SessionCalories(sets []models.WorkoutSet) int {
	var total float64
	for _, s := range sets {
		total += EstimateSetCalories(s, s.Exercise)
	}
	return int(math.Round(total))
}

// DailyBalance derives the dashboard calorie numbers: the daily limit is
// basal metabolism plus calories burned, the balance is what remains after
// consumption.
func DailyBalance(basal, burned, consumed int) (limit, balance int) {
	limit = basal + burned
	return limit, limit - consumed
}

// CalculateBMR computes basal metabolic rate with the Mifflin-St Jeor
// equation. Returns 0 when the physical profile is incomplete.
func CalculateBMR(gender string, age int, heightCm, weightKg float64) int {
	if age <= 0 || heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}
	return int(math.Round(bmr))
}
