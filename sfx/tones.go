package sfx

import (
	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/effects"
	"github.com/cwbudde/algo-sfx/dsp/envelope"
	"github.com/cwbudde/algo-sfx/dsp/osc"
)

// buildDefeat sweeps a triangle down from 440 Hz along its own amplitude
// envelope and feeds it through an echo.
func buildDefeat(sampleRate int, _ uint64) (core.Generator, error) {
	sr := float64(sampleRate)
	clock, err := osc.NewClock(sr)
	if err != nil {
		return nil, err
	}
	phase, err := osc.NewPhase(sr)
	if err != nil {
		return nil, err
	}
	env, err := envelope.NewExponential(0.0001, 1)
	if err != nil {
		return nil, err
	}
	echo, err := effects.NewDelay(sr, 0.25, 0.25)
	if err != nil {
		return nil, err
	}

	return core.GeneratorFunc(func() float64 {
		t := clock.Next()
		e := env.Get(t)
		return echo.Process(osc.Triangle(phase.Next(440*e))*e) * 0.5
	}), nil
}

// buildPing is a two-operator FM tone whose modulation depth follows the
// amplitude envelope.
func buildPing(sampleRate int, _ uint64) (core.Generator, error) {
	sr := float64(sampleRate)
	clock, err := osc.NewClock(sr)
	if err != nil {
		return nil, err
	}
	carrier, err := osc.NewPhase(sr)
	if err != nil {
		return nil, err
	}
	modulator, err := osc.NewPhase(sr)
	if err != nil {
		return nil, err
	}
	env, err := envelope.NewExponential(0.0001, 0.1)
	if err != nil {
		return nil, err
	}

	return core.GeneratorFunc(func() float64 {
		e := env.Get(clock.Next())
		mod := osc.Sin(modulator.Next(1100))
		return osc.Sin(carrier.Next(880+800*e*mod)) * e * 0.25
	}), nil
}

// buildHitSelf drives a triangle along a 200-100-200 Hz pitch path.
func buildHitSelf(sampleRate int, _ uint64) (core.Generator, error) {
	sr := float64(sampleRate)
	clock, err := osc.NewClock(sr)
	if err != nil {
		return nil, err
	}
	phase, err := osc.NewPhase(sr)
	if err != nil {
		return nil, err
	}
	env, err := envelope.NewExponential(0.0001, 0.5)
	if err != nil {
		return nil, err
	}
	pitch, err := envelope.NewPath(
		envelope.Point{Time: 0, Value: 200},
		envelope.Point{Time: 0.1, Value: 100},
		envelope.Point{Time: 0.2, Value: 200},
	)
	if err != nil {
		return nil, err
	}

	return core.GeneratorFunc(func() float64 {
		t := clock.Next()
		return osc.Triangle(phase.Next(pitch.Get(t))) * env.Get(t) * 0.25
	}), nil
}
