package fitness

import (
	"testing"

	"homeos/internal/models"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestMergeMeasurementInheritsBlanks(t *testing.T) {
	prev := &models.BodyMeasurement{
		Weight: fptr(70),
		Chest:  fptr(100),
		Biceps: fptr(35),
	}
	in := MeasurementInput{Weight: fptr(69.5)}

	merged, hasNew := MergeMeasurement(prev, in)

	assert.True(t, hasNew)
	assert.Equal(t, 69.5, *merged.Weight)
	assert.Equal(t, 100.0, *merged.Chest)
	assert.Equal(t, 35.0, *merged.Biceps)
	assert.Nil(t, merged.Hips)
}

func TestMergeMeasurementNothingNew(t *testing.T) {
	prev := &models.BodyMeasurement{Weight: fptr(70)}

	_, hasNew := MergeMeasurement(prev, MeasurementInput{})

	assert.False(t, hasNew)
}

func TestMergeMeasurementNoHistory(t *testing.T) {
	merged, hasNew := MergeMeasurement(nil, MeasurementInput{Chest: fptr(101)})

	assert.True(t, hasNew)
	assert.Equal(t, 101.0, *merged.Chest)
	assert.Nil(t, merged.Weight)
}

func TestMeasurementDeltas(t *testing.T) {
	first := &models.BodyMeasurement{
		Weight: fptr(72.4),
		Chest:  fptr(100),
		Biceps: fptr(35),
	}
	last := &models.BodyMeasurement{
		Weight: fptr(69.1),
		Chest:  fptr(100), // unchanged, must be omitted
		Hips:   fptr(95),  // absent in first, must be omitted
	}

	deltas := MeasurementDeltas(first, last)

	assert.Equal(t, []ProgressDelta{
		{Label: "Weight", Diff: -3.3, Unit: "kg"},
	}, deltas)
}

func TestMeasurementDeltasNilSnapshots(t *testing.T) {
	assert.Nil(t, MeasurementDeltas(nil, &models.BodyMeasurement{}))
	assert.Nil(t, MeasurementDeltas(&models.BodyMeasurement{}, nil))
}
