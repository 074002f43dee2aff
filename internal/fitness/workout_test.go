package fitness

import (
	"testing"
	"time"

	"homeos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestExpandEntriesSeriesExpansion(t *testing.T) {
	entries := []WorkoutEntry{
		{ExerciseID: 1, Series: 3, Weight: 60, Reps: 10},
		{ExerciseID: 2, Time: 20},
	}

	sets := ExpandEntries(entries)

	assert.Len(t, sets, 4)
	for _, s := range sets[:3] {
		assert.Equal(t, uint(1), s.ExerciseID)
		assert.Equal(t, 0, s.Position)
		assert.Equal(t, 60.0, s.Weight)
		assert.Equal(t, 10, s.Reps)
	}
	// Series defaults to 1 when omitted.
	assert.Equal(t, uint(2), sets[3].ExerciseID)
	assert.Equal(t, 1, sets[3].Position)
	assert.Equal(t, 20, sets[3].Time)
}

func TestExpandEntriesDropsEmptyEntries(t *testing.T) {
	entries := []WorkoutEntry{
		{ExerciseID: 1, Weight: 60},           // weight without reps
		{ExerciseID: 2, Reps: 10},             // reps without weight
		{ExerciseID: 3, Weight: 60, Reps: 10}, // valid strength
		{ExerciseID: 4, Distance: 5},          // valid cardio
		{ExerciseID: 5},                       // fully blank
	}

	sets := ExpandEntries(entries)

	assert.Len(t, sets, 2)
	assert.Equal(t, uint(3), sets[0].ExerciseID)
	assert.Equal(t, uint(4), sets[1].ExerciseID)
	// Positions keep the submission index, not a renumbered one.
	assert.Equal(t, 2, sets[0].Position)
	assert.Equal(t, 3, sets[1].Position)
}

func TestExpandEntriesEmpty(t *testing.T) {
	assert.Empty(t, ExpandEntries(nil))
}

func TestBuildPrefillHistoryWins(t *testing.T) {
	re := models.RoutineExercise{
		ExerciseID:  1,
		Exercise:    models.Exercise{Name: "Bench press", MuscleGroup: "Chest"},
		Series:      4,
		RestSeconds: 90,
	}
	last := &models.WorkoutSet{Weight: 62.5, Reps: 8}

	p := BuildPrefill(re, last)

	assert.Equal(t, 62.5, p.Weight)
	assert.Equal(t, 8, p.Reps)
	assert.Equal(t, 4, p.Series)
	assert.Equal(t, 90, p.RestSeconds)
	assert.False(t, p.IsCardio)
}

func TestBuildPrefillCardioFallsBackToTargets(t *testing.T) {
	re := models.RoutineExercise{
		ExerciseID:     2,
		Exercise:       models.Exercise{Name: "Treadmill run", MuscleGroup: models.MuscleGroupCardio},
		Series:         1,
		TargetDistance: 5,
		TargetTime:     30,
	}

	// No history at all: routine targets apply.
	p := BuildPrefill(re, nil)
	assert.Equal(t, 5.0, p.Distance)
	assert.Equal(t, 30, p.Time)

	// History with zero cardio values does not override the targets.
	p = BuildPrefill(re, &models.WorkoutSet{})
	assert.Equal(t, 5.0, p.Distance)
	assert.Equal(t, 30, p.Time)

	// Non-zero history wins.
	p = BuildPrefill(re, &models.WorkoutSet{Distance: 6.2, Time: 35})
	assert.Equal(t, 6.2, p.Distance)
	assert.Equal(t, 35, p.Time)
}

func TestBuildPrefillSeriesDefault(t *testing.T) {
	p := BuildPrefill(models.RoutineExercise{ExerciseID: 1}, nil)
	assert.Equal(t, 3, p.Series)
}

func TestProgressSeriesMaxPerDay(t *testing.T) {
	day1 := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 26, 18, 30, 0, 0, time.UTC)

	samples := []SetSample{
		{Date: day1, Weight: 60},
		{Date: day1, Weight: 65},
		{Date: day1, Weight: 62.5},
		{Date: day2, Weight: 67.5},
	}

	labels, values := ProgressSeries(samples)

	assert.Equal(t, []string{"2026-08-24", "2026-08-26"}, labels)
	assert.Equal(t, []float64{65, 67.5}, values)
}

func TestProgressSeriesEmpty(t *testing.T) {
	labels, values := ProgressSeries(nil)
	assert.Empty(t, labels)
	assert.Empty(t, values)
}
