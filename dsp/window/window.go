// Package window generates spectral analysis window coefficients.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form (denominator size instead of
// size-1), the form wanted for overlapping FFT frames.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Hann returns Hann window coefficients 0.5 - 0.5*cos(2*pi*x). A size-1
// window is the single coefficient 1.
func Hann(size int, opts ...Option) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be > 0: %d: %w", size, core.ErrInvalidParameter)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	w := make([]float64, size)
	if size == 1 {
		w[0] = 1
		return w, nil
	}

	den := float64(size - 1)
	if cfg.periodic {
		den = float64(size)
	}
	for n := range w {
		w[n] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(n)/den)
	}
	return w, nil
}
