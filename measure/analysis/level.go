package analysis

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Level holds time-domain statistics of a buffer.
type Level struct {
	Length   int
	Duration float64 // seconds
	DC       float64 // mean
	Peak     float64 // max |x|
	PeakPos  int
	PeakDB   float64
	RMS      float64
	RMSDB    float64
	// CrestDB is the peak-to-RMS ratio in dB, 0 for silence.
	CrestDB       float64
	ZeroCrossings int
	// Clipped counts samples with |x| > 1, which a 16-bit encoder saturates.
	Clipped int
	// Tail is the time of the last sample within TailRangeDB of the peak.
	Tail float64
}

// TailRangeDB is the level below the peak at which a sound is considered to
// have decayed.
const TailRangeDB = 60.0

// MeasureLevel computes time-domain statistics of samples.
func MeasureLevel(samples []float64, sampleRate float64) Level {
	lv := Level{
		Length: len(samples),
		PeakDB: math.Inf(-1),
		RMSDB:  math.Inf(-1),
	}
	if len(samples) == 0 || sampleRate <= 0 {
		return lv
	}
	lv.Duration = float64(len(samples)) / sampleRate

	var sum, sumSq float64
	for i, x := range samples {
		sum += x
		sumSq += x * x
		a := math.Abs(x)
		if a > lv.Peak {
			lv.Peak = a
			lv.PeakPos = i
		}
		if a > 1 {
			lv.Clipped++
		}
		if i > 0 && samples[i-1]*x < 0 {
			lv.ZeroCrossings++
		}
	}

	n := float64(len(samples))
	lv.DC = sum / n
	lv.RMS = mathSqrt(sumSq / n)
	lv.PeakDB = core.LinearToDB(lv.Peak)
	lv.RMSDB = core.LinearToDB(lv.RMS)
	if lv.RMS > 0 {
		lv.CrestDB = lv.PeakDB - lv.RMSDB
	}

	if lv.Peak == 0 {
		return lv
	}
	floor := lv.Peak * core.DBToLinear(-TailRangeDB)
	for i := len(samples) - 1; i >= 0; i-- {
		if math.Abs(samples[i]) >= floor {
			lv.Tail = float64(i+1) / sampleRate
			break
		}
	}
	return lv
}
