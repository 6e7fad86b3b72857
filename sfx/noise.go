package sfx

import (
	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/effects"
	"github.com/cwbudde/algo-sfx/dsp/envelope"
	"github.com/cwbudde/algo-sfx/dsp/filter"
	"github.com/cwbudde/algo-sfx/dsp/osc"
)

// noiseBurst band-passes hashed noise under an exponential decay.
func noiseBurst(sampleRate int, seed uint64, noiseRate, center, q, decay, gain float64) (core.Generator, error) {
	sr := float64(sampleRate)
	clock, err := osc.NewClock(sr)
	if err != nil {
		return nil, err
	}
	env, err := envelope.NewExponential(0.0001, decay)
	if err != nil {
		return nil, err
	}
	bp, err := filter.NewBandPass(sr, center, q)
	if err != nil {
		return nil, err
	}
	noiseSeed := uint32(seed)

	return core.GeneratorFunc(func() float64 {
		t := clock.Next()
		return bp.Process(osc.Noise(noiseSeed, t*noiseRate)*env.Get(t)) * gain
	}), nil
}

func buildHit(sampleRate int, seed uint64) (core.Generator, error) {
	return noiseBurst(sampleRate, seed, 1000, 1000, 10, 0.5, 1)
}

func buildShoot(sampleRate int, seed uint64) (core.Generator, error) {
	return noiseBurst(sampleRate, seed, 100, 2000, 20, 0.1, 2)
}

// buildZap mixes a 440 Hz saw with hashed noise, saturates the mix and
// closes a one-pole low-pass from 2.2 kHz down to 200 Hz.
func buildZap(sampleRate int, seed uint64) (core.Generator, error) {
	sr := float64(sampleRate)
	clock, err := osc.NewClock(sr)
	if err != nil {
		return nil, err
	}
	env, err := envelope.NewExponential(0.0001, 0.5)
	if err != nil {
		return nil, err
	}
	lp := filter.NewLowPass()
	clip := effects.SoftClipper{Factor: 5}
	noiseSeed := uint32(seed)

	return core.GeneratorFunc(func() float64 {
		t := clock.Next()
		e := env.Get(t)
		x := (osc.Saw(t*440) + osc.Noise(noiseSeed, t*1000)) * e
		return lp.Process(filter.Alpha(sr, 2000*(e+0.1)), clip.Process(x)*0.5)
	}), nil
}
