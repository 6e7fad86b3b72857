package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/filter/biquad"
)

// BandPass is a second-order band-pass filter with coefficients fixed at
// construction.
type BandPass struct {
	section    *biquad.Section
	sampleRate float64
	center     float64
	q          float64
}

// NewBandPass designs a band-pass filter centered at center Hz with quality
// factor q. center must lie strictly between 0 and Nyquist.
func NewBandPass(sampleRate, center, q float64) (*BandPass, error) {
	c, err := BandPassCoefficients(sampleRate, center, q)
	if err != nil {
		return nil, err
	}
	return &BandPass{
		section:    biquad.NewSection(c),
		sampleRate: sampleRate,
		center:     center,
		q:          q,
	}, nil
}

// BandPassCoefficients returns the normalized biquad coefficients used by
// NewBandPass: alpha = sin(w)/(2q), b0 = alpha/a0, b1 = 0, b2 = -alpha/a0,
// a1 = -2cos(w)/a0, a2 = (1-alpha)/a0 with a0 = 1+alpha.
func BandPassCoefficients(sampleRate, center, q float64) (biquad.Coefficients, error) {
	if err := core.ValidateSampleRate("band-pass", sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	if err := core.ValidatePositive("band-pass", "q", q); err != nil {
		return biquad.Coefficients{}, err
	}
	nyquist := sampleRate / 2
	if center <= 0 || center >= nyquist || math.IsNaN(center) {
		return biquad.Coefficients{}, fmt.Errorf("band-pass center must be in (0, %f): %f: %w",
			nyquist, center, core.ErrInvalidParameter)
	}

	w := 2 * math.Pi * center / sampleRate
	alpha := math.Sin(w) / (2 * q)
	a0 := 1 + alpha

	return biquad.Coefficients{
		B0: alpha / a0,
		B1: 0,
		B2: -alpha / a0,
		A1: -2 * math.Cos(w) / a0,
		A2: (1 - alpha) / a0,
	}, nil
}

// Process filters one sample.
func (f *BandPass) Process(x float64) float64 {
	return f.section.ProcessSample(x)
}

// ProcessInPlace filters buf in place.
func (f *BandPass) ProcessInPlace(buf []float64) {
	f.section.ProcessBlock(buf)
}

// Coefficients returns the designed coefficients.
func (f *BandPass) Coefficients() biquad.Coefficients { return f.section.Coefficients }

// Center returns the center frequency in Hz.
func (f *BandPass) Center() float64 { return f.center }

// Q returns the quality factor.
func (f *BandPass) Q() float64 { return f.q }

// SampleRate returns the sample rate in Hz.
func (f *BandPass) SampleRate() float64 { return f.sampleRate }

// Reset clears the filter history.
func (f *BandPass) Reset() { f.section.Reset() }
