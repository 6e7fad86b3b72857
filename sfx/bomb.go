package sfx

import (
	"math/rand"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/emitter"
	"github.com/cwbudde/algo-sfx/dsp/envelope"
	"github.com/cwbudde/algo-sfx/dsp/granular"
	"github.com/cwbudde/algo-sfx/dsp/osc"
)

const (
	bombGrains       = 200
	bombMinSpacing   = 0.001
	bombMaxSpacing   = 0.01
	bombGrainSeconds = 0.05
	bombMinFreq      = 240.0
	bombMaxFreq      = 250.0
	bombMinGain      = 0.01
	bombMaxGain      = 0.5
)

// bombGrain is a decaying sine voice. Its clock and phase start from the
// zero state of the templates it was copied from.
type bombGrain struct {
	clock osc.Clock
	phase osc.Phase
	env   *envelope.Exponential
	freq  float64
	gain  float64
}

func (g *bombGrain) Next() float64 {
	return osc.Sin(g.phase.Next(g.freq)) * g.env.Get(g.clock.Next()) * g.gain
}

type bomb struct {
	clock *osc.Clock
	env   *envelope.Exponential
	trig  *emitter.Trigger
	pool  *granular.Pool
	rng   *rand.Rand

	grainClock osc.Clock
	grainPhase osc.Phase
	grainEnv   *envelope.Exponential
}

func buildBomb(sampleRate int, seed uint64) (core.Generator, error) {
	sr := float64(sampleRate)

	clock, err := osc.NewClock(sr)
	if err != nil {
		return nil, err
	}
	phase, err := osc.NewPhase(sr)
	if err != nil {
		return nil, err
	}
	pool, err := granular.NewPool(sr)
	if err != nil {
		return nil, err
	}
	env, err := envelope.NewExponential(0.0001, 2)
	if err != nil {
		return nil, err
	}
	grainEnv, err := envelope.NewExponential(0.0001, bombGrainSeconds)
	if err != nil {
		return nil, err
	}
	spacing, err := emitter.NewRandom(seed, bombMinSpacing, bombMaxSpacing)
	if err != nil {
		return nil, err
	}

	return &bomb{
		clock:      clock,
		env:        env,
		trig:       emitter.NewTrigger(emitter.Limit(bombGrains, spacing)),
		pool:       pool,
		rng:        emitter.NewRand(seed),
		grainClock: *clock,
		grainPhase: *phase,
		grainEnv:   grainEnv,
	}, nil
}

func (b *bomb) Next() float64 {
	t := b.clock.Next()
	for b.trig.Tick(t) {
		freq := emitter.Uniform(b.rng, bombMinFreq, bombMaxFreq)
		gain := emitter.Uniform(b.rng, bombMinGain, bombMaxGain)
		b.pool.Add(&bombGrain{
			clock: b.grainClock,
			phase: b.grainPhase,
			env:   b.grainEnv,
			freq:  freq,
			gain:  gain,
		}, bombGrainSeconds)
	}
	return b.pool.Tick() * b.env.Get(t)
}
