package osc

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Phase is a normalized phase accumulator in [0, 1).
//
// Phase is not safe for concurrent use; each generator chain owns its own.
type Phase struct {
	sampleRate float64
	phase      float64
}

// NewPhase returns a phase accumulator starting at 0.
func NewPhase(sampleRate float64) (*Phase, error) {
	if err := core.ValidateSampleRate("phase", sampleRate); err != nil {
		return nil, err
	}
	return &Phase{sampleRate: sampleRate}, nil
}

// Next returns the current phase and then advances it by freq/sampleRate,
// wrapping modulo 1. Negative frequencies run the phase backwards.
func (p *Phase) Next(freq float64) float64 {
	out := p.phase
	p.phase = wrapUnit(p.phase + freq/p.sampleRate)
	return out
}

// Value returns the current phase without advancing.
func (p *Phase) Value() float64 { return p.phase }

// SampleRate returns the sample rate in Hz.
func (p *Phase) SampleRate() float64 { return p.sampleRate }

// Reset rewinds the phase to 0.
func (p *Phase) Reset() { p.phase = 0 }

func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	// x+1 can round up to exactly 1 for tiny negative x.
	if x >= 1 {
		x = 0
	}
	return x
}
