package envelope

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Exponential moves exponentially from 1 at t=0 to a target value at
// t=duration and holds the target afterwards.
type Exponential struct {
	target   float64
	duration float64
	logTgt   float64
}

// NewExponential returns an exponential envelope. Both target and duration
// must be finite and > 0: the curve is defined through ln(target).
func NewExponential(target, duration float64) (*Exponential, error) {
	if err := core.ValidatePositive("exponential envelope", "target", target); err != nil {
		return nil, err
	}
	if err := core.ValidatePositive("exponential envelope", "duration", duration); err != nil {
		return nil, err
	}
	return &Exponential{
		target:   target,
		duration: duration,
		logTgt:   math.Log(target),
	}, nil
}

// Get returns the gain at time t. Times before 0 extrapolate the curve.
func (e *Exponential) Get(t float64) float64 {
	if t >= e.duration {
		return e.target
	}
	return math.Exp(e.logTgt * (t / e.duration))
}

// Duration returns the time at which the target is reached.
func (e *Exponential) Duration() float64 { return e.duration }

// Target returns the terminal gain.
func (e *Exponential) Target() float64 { return e.target }
