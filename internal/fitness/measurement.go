package fitness

import (
	"math"

	"homeos/internal/models"
)

// MeasurementInput carries the user's submission; nil means the field was
// left blank.
type MeasurementInput struct {
	Weight *float64 `json:"weight"`
	Chest  *float64 `json:"chest"`
	Biceps *float64 `json:"biceps"`
	Hips   *float64 `json:"hips"`
	Thigh  *float64 `json:"thigh"`
	Calf   *float64 `json:"calf"`
}

// MergeMeasurement builds the next snapshot from a submission and the
// previous measurement, if any. Blank fields inherit the prior value rather
// than storing null. The second return value reports whether the submission
// contained at least one genuinely new value; callers must reject the write
// when it did not, so a no-op submission never duplicates the prior
// snapshot. With no prior measurement, blanks stay nil.
func MergeMeasurement(prev *models.BodyMeasurement, in MeasurementInput) (models.BodyMeasurement, bool) {
	hasNew := false
	pick := func(submitted *float64, inherited *float64) *float64 {
		if submitted != nil {
			hasNew = true
			return submitted
		}
		return inherited
	}

	var merged models.BodyMeasurement
	if prev != nil {
		merged.Weight = pick(in.Weight, prev.Weight)
		merged.Chest = pick(in.Chest, prev.Chest)
		merged.Biceps = pick(in.Biceps, prev.Biceps)
		merged.Hips = pick(in.Hips, prev.Hips)
		merged.Thigh = pick(in.Thigh, prev.Thigh)
		merged.Calf = pick(in.Calf, prev.Calf)
	} else {
		merged.Weight = pick(in.Weight, nil)
		merged.Chest = pick(in.Chest, nil)
		merged.Biceps = pick(in.Biceps, nil)
		merged.Hips = pick(in.Hips, nil)
		merged.Thigh = pick(in.Thigh, nil)
		merged.Calf = pick(in.Calf, nil)
	}
	return merged, hasNew
}

// ProgressDelta is one metric's change between two snapshots.
type ProgressDelta struct {
	Label string  `json:"label"`
	Diff  float64 `json:"diff"`
	Unit  string  `json:"unit"`
}

// MeasurementDeltas compares the first and last snapshots and reports the
// change of every metric present in both. Zero-change metrics are omitted.
func MeasurementDeltas(first, last *models.BodyMeasurement) []ProgressDelta {
	if first == nil || last == nil {
		return nil
	}
	metrics := []struct {
		label string
		unit  string
		from  *float64
		to    *float64
	}{
		{"Weight", "kg", first.Weight, last.Weight},
		{"Chest", "cm", first.Chest, last.Chest},
		{"Biceps", "cm", first.Biceps, last.Biceps},
		{"Hips", "cm", first.Hips, last.Hips},
		{"Thigh", "cm", first.Thigh, last.Thigh},
		{"Calf", "cm", first.Calf, last.Calf},
	}
	var deltas []ProgressDelta
	for _, m := range metrics {
		if m.from == nil || m.to == nil {
			continue
		}
		diff := *m.to - *m.from
		if diff == 0 {
			continue
		}
		deltas = append(deltas, ProgressDelta{Label: m.label, Diff: round2(diff), Unit: m.unit})
	}
	return deltas
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
