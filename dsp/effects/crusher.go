package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

const (
	minCrusherBits = 1
	maxCrusherBits = 24
	maxCrusherHold = 256
)

// Crusher is a lo-fi degrader. It holds every input for Hold samples
// (sample-and-hold rate reduction) and rounds the held value to a grid of
// 2^(bits-1) steps per unit. Bits may be fractional. Out-of-range input is
// quantized but not clipped.
type Crusher struct {
	bits   float64
	hold   int
	levels float64

	count int
	held  float64
}

// NewCrusher returns a crusher with the given bit depth in [1, 24] and hold
// factor in [1, 256]. Bits 24 with hold 1 is close to transparent.
func NewCrusher(bits float64, hold int) (*Crusher, error) {
	if bits < minCrusherBits || bits > maxCrusherBits || math.IsNaN(bits) {
		return nil, fmt.Errorf("crusher bits must be in [%d, %d]: %f: %w",
			minCrusherBits, maxCrusherBits, bits, core.ErrInvalidParameter)
	}
	if hold < 1 || hold > maxCrusherHold {
		return nil, fmt.Errorf("crusher hold must be in [1, %d]: %d: %w",
			maxCrusherHold, hold, core.ErrInvalidParameter)
	}
	return &Crusher{
		bits:   bits,
		hold:   hold,
		levels: math.Exp2(bits - 1),
	}, nil
}

// Process processes one sample. The first input is always sampled.
func (c *Crusher) Process(x float64) float64 {
	if c.count == 0 {
		c.held = math.Round(x*c.levels) / c.levels
	}
	c.count++
	if c.count >= c.hold {
		c.count = 0
	}
	return c.held
}

// ProcessInPlace crushes buf in place.
func (c *Crusher) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = c.Process(buf[i])
	}
}

// Reset clears the hold state.
func (c *Crusher) Reset() {
	c.count = 0
	c.held = 0
}

// Bits returns the bit depth.
func (c *Crusher) Bits() float64 { return c.bits }

// Hold returns the hold factor.
func (c *Crusher) Hold() int { return c.hold }
