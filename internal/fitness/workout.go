package fitness

import (
	"time"

	"homeos/internal/models"
)

// WorkoutEntry is one submitted line of a workout log. Zero values mean the
// field was left blank, mirroring the form the original submissions take.
type WorkoutEntry struct {
	ExerciseID uint    `json:"exercise_id" binding:"required"`
	Series     int     `json:"series,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	Reps       int     `json:"reps,omitempty"`
	Distance   float64 `json:"distance,omitempty"`
	Time       int     `json:"time,omitempty"`
}

func (e WorkoutEntry) hasStrength() bool { return e.Weight > 0 && e.Reps > 0 }
func (e WorkoutEntry) hasCardio() bool   { return e.Distance > 0 || e.Time > 0 }

// ExpandEntries materializes submitted entries into workout sets: one set
// per repetition of series (default 1), submission order preserved as the
// position index. Entries carrying neither a strength pair nor cardio data
// are dropped silently rather than rejected.
func ExpandEntries(entries []WorkoutEntry) []models.WorkoutSet {
	var sets []models.WorkoutSet
	for index, e := range entries {
		if !e.hasStrength() && !e.hasCardio() {
			continue
		}
		series := e.Series
		if series < 1 {
			series = 1
		}
		for i := 0; i < series; i++ {
			sets = append(sets, models.WorkoutSet{
				ExerciseID: e.ExerciseID,
				Position:   index,
				Weight:     e.Weight,
				Reps:       e.Reps,
				Distance:   e.Distance,
				Time:       e.Time,
			})
		}
	}
	return sets
}

// PrefillEntry is the suggested starting point for logging one routine
// exercise, derived from training history and routine targets.
type PrefillEntry struct {
	ExerciseID  uint    `json:"exercise_id"`
	Name        string  `json:"name"`
	IsCardio    bool    `json:"is_cardio"`
	Series      int     `json:"series"`
	RestSeconds int     `json:"rest_seconds"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	Distance    float64 `json:"distance"`
	Time        int     `json:"time"`
	Description string  `json:"description,omitempty"`
	VideoLink   string  `json:"video_link,omitempty"`
}

// BuildPrefill merges the most recent logged set for an exercise with the
// routine's configured targets. History wins for weight and reps; for cardio
// distance/time a non-zero historical value wins, otherwise the routine
// target applies.
func BuildPrefill(re models.RoutineExercise, last *models.WorkoutSet) PrefillEntry {
	p := PrefillEntry{
		ExerciseID:  re.ExerciseID,
		Name:        re.Exercise.Name,
		IsCardio:    re.Exercise.IsCardio(),
		Series:      re.Series,
		RestSeconds: re.RestSeconds,
		Distance:    re.TargetDistance,
		Time:        re.TargetTime,
		Description: re.Exercise.Description,
		VideoLink:   re.Exercise.VideoLink,
	}
	if p.Series < 1 {
		p.Series = 3
	}
	if last != nil {
		p.Weight = last.Weight
		p.Reps = last.Reps
		if last.Distance > 0 {
			p.Distance = last.Distance
		}
		if last.Time > 0 {
			p.Time = last.Time
		}
	}
	return p
}

// SetSample pairs one set's weight with its session date for charting.
type SetSample struct {
	Date   time.Time
	Weight float64
}

// ProgressSeries reduces an exercise's history (ordered by session date
// ascending) to one data point per calendar date: the maximum weight lifted
// that day. Labels and values are returned as parallel slices ready for the
// presentation layer.
func ProgressSeries(samples []SetSample) (labels []string, values []float64) {
	var currentDay string
	for _, s := range samples {
		day := s.Date.Format("2006-01-02")
		if day != currentDay {
			currentDay = day
			labels = append(labels, day)
			values = append(values, s.Weight)
			continue
		}
		if s.Weight > values[len(values)-1] {
			values[len(values)-1] = s.Weight
		}
	}
	return labels, values
}
