package emitter

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Emitter yields the duration in seconds until the next event.
type Emitter interface {
	Next() float64
}

// EmitterFunc adapts a closure to Emitter.
type EmitterFunc func() float64

// Next calls f.
func (f EmitterFunc) Next() float64 { return f() }

// Periodic is an emitter with a constant duration. The period must be > 0
// for a trigger driven by it to advance; NewPeriodic checks this.
type Periodic float64

// NewPeriodic returns a Periodic emitter after validating that period is
// finite and > 0.
func NewPeriodic(period float64) (Periodic, error) {
	if err := core.ValidatePositive("periodic emitter", "period", period); err != nil {
		return 0, err
	}
	return Periodic(period), nil
}

// Next returns the period.
func (p Periodic) Next() float64 { return float64(p) }

// Random draws durations uniformly from [min, max).
type Random struct {
	rng      *rand.Rand
	min, max float64
}

// NewRandom returns a random emitter with its own PRNG seeded from seed.
// Identical seeds produce identical duration sequences.
func NewRandom(seed uint64, min, max float64) (*Random, error) {
	return NewRandomFrom(NewRand(seed), min, max)
}

// NewRandomFrom returns a random emitter drawing from rng. min must be > 0
// so every drawn duration moves the schedule forward. The emitter takes
// ownership of rng's sequence; sharing it with other consumers interleaves
// their draws.
func NewRandomFrom(rng *rand.Rand, min, max float64) (*Random, error) {
	if rng == nil {
		return nil, fmt.Errorf("random emitter rng must not be nil: %w", core.ErrInvalidParameter)
	}
	if err := core.ValidatePositive("random emitter", "min", min); err != nil {
		return nil, err
	}
	if err := core.ValidateFinite("random emitter", "max", max); err != nil {
		return nil, err
	}
	if min > max {
		return nil, fmt.Errorf("random emitter min must be <= max: %f > %f: %w", min, max, core.ErrInvalidParameter)
	}
	return &Random{rng: rng, min: min, max: max}, nil
}

// Next returns a duration in [min, max), or min when min == max.
func (r *Random) Next() float64 {
	return Uniform(r.rng, r.min, r.max)
}

// Limit passes through the first n durations of e and then returns +Inf
// forever. Once exhausted, e is never pulled again.
func Limit(n int, e Emitter) *Limited {
	return &Limited{emitter: e, remaining: n}
}

// Limited is a count-limited emitter created by Limit.
type Limited struct {
	emitter   Emitter
	remaining int
}

// Next returns the wrapped emitter's next duration, or +Inf once n durations
// have been produced.
func (l *Limited) Next() float64 {
	if l.remaining <= 0 {
		return math.Inf(1)
	}
	l.remaining--
	return l.emitter.Next()
}

// Exhausted reports whether every allowed duration has been produced.
func (l *Limited) Exhausted() bool { return l.remaining <= 0 }

// NewRand returns a deterministic PRNG for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// Uniform draws from [min, max) using rng, or returns min when the range is
// empty.
func Uniform(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + rng.Float64()*(max-min)
	// min + f*(max-min) can round up to max for f close to 1.
	if v >= max {
		return math.Nextafter(max, min)
	}
	return v
}
