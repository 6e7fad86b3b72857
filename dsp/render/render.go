package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// SampleCount returns int(duration*sampleRate) after validating both values.
func SampleCount(duration float64, sampleRate int) (int, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("render sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidSampleRate)
	}
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("render duration must be > 0 and finite: %f: %w", duration, core.ErrInvalidParameter)
	}
	return int(duration * float64(sampleRate)), nil
}

// Render calls g exactly int(duration*sampleRate) times and returns the
// samples in call order.
func Render(duration float64, sampleRate int, g core.Generator) ([]float64, error) {
	n, err := SampleCount(duration, sampleRate)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("render generator must not be nil: %w", core.ErrInvalidParameter)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out, nil
}

// RenderTimed calls g exactly int(duration*sampleRate) times with the elapsed
// time i/sampleRate of each sample index i.
func RenderTimed(duration float64, sampleRate int, g core.TimedGenerator) ([]float64, error) {
	n, err := SampleCount(duration, sampleRate)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("render generator must not be nil: %w", core.ErrInvalidParameter)
	}
	sr := float64(sampleRate)
	out := make([]float64, n)
	for i := range out {
		out[i] = g.At(float64(i) / sr)
	}
	return out, nil
}

// RenderInto resizes dst to n samples, reusing its capacity, and fills it
// from g. It returns the resized slice.
func RenderInto(dst []float64, n int, g core.Generator) []float64 {
	dst = core.EnsureLen(dst, n)
	for i := range dst {
		dst[i] = g.Next()
	}
	return dst
}
