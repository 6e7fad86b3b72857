package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureLevelBasics(t *testing.T) {
	samples := []float64{0.5, -0.5, 0.5, -0.5}
	lv := MeasureLevel(samples, 4)

	assert.Equal(t, 4, lv.Length)
	assert.Equal(t, 1.0, lv.Duration)
	assert.Equal(t, 0.0, lv.DC)
	assert.Equal(t, 0.5, lv.Peak)
	assert.Equal(t, 0, lv.PeakPos)
	assert.InDelta(t, 0.5, lv.RMS, 1e-12)
	assert.InDelta(t, 0, lv.CrestDB, 1e-9)
	assert.InDelta(t, 20*math.Log10(0.5), lv.PeakDB, 1e-9)
	assert.Equal(t, 3, lv.ZeroCrossings)
	assert.Equal(t, 0, lv.Clipped)
	assert.Equal(t, 1.0, lv.Tail)
}

func TestMeasureLevelClippingAndTail(t *testing.T) {
	samples := make([]float64, 100)
	samples[10] = -1.5
	samples[11] = 1.25
	samples[20] = 1e-2
	samples[50] = 1e-5

	lv := MeasureLevel(samples, 100)
	assert.Equal(t, 1.5, lv.Peak)
	assert.Equal(t, 10, lv.PeakPos)
	assert.Equal(t, 2, lv.Clipped)
	// 1e-5 is more than 60 dB below the peak, 1e-2 is not.
	assert.InDelta(t, 0.21, lv.Tail, 1e-12)
}

func TestMeasureLevelSilence(t *testing.T) {
	lv := MeasureLevel(make([]float64, 10), 10)
	assert.Equal(t, 0.0, lv.Peak)
	assert.True(t, math.IsInf(lv.PeakDB, -1))
	assert.True(t, math.IsInf(lv.RMSDB, -1))
	assert.Equal(t, 0.0, lv.CrestDB)
	assert.Equal(t, 0.0, lv.Tail)

	empty := MeasureLevel(nil, 44100)
	assert.Equal(t, 0, empty.Length)
	assert.True(t, math.IsInf(empty.PeakDB, -1))
}
