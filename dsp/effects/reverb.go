package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/delay"
)

const (
	reverbInputGain  = 0.015
	reverbAllpassFB  = 0.5
	reverbTuningRate = 44100.0

	defaultReverbRoom = 0.5
	defaultReverbDamp = 0.5
	defaultReverbWet  = 1.0
	defaultReverbDry  = 1.0
)

// Comb and allpass lengths in samples at 44.1 kHz.
var (
	reverbCombTuning    = [...]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	reverbAllpassTuning = [...]int{556, 441, 341, 225}
)

// ReverbOption configures NewReverb.
type ReverbOption func(*reverbConfig) error

type reverbConfig struct {
	room, damp, wet, dry float64
}

// WithReverbRoom sets the comb feedback in [0, 1). Larger rooms ring longer.
func WithReverbRoom(v float64) ReverbOption {
	return func(cfg *reverbConfig) error {
		if v < 0 || v >= 1 || math.IsNaN(v) {
			return fmt.Errorf("reverb room must be in [0, 1): %f: %w", v, core.ErrInvalidParameter)
		}
		cfg.room = v
		return nil
	}
}

// WithReverbDamp sets high-frequency damping inside the combs in [0, 1].
func WithReverbDamp(v float64) ReverbOption {
	return func(cfg *reverbConfig) error {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("reverb damp must be in [0, 1]: %f: %w", v, core.ErrInvalidParameter)
		}
		cfg.damp = v
		return nil
	}
}

// WithReverbMix sets the wet and dry gains. Both must be finite and >= 0.
func WithReverbMix(wet, dry float64) ReverbOption {
	return func(cfg *reverbConfig) error {
		if wet < 0 || dry < 0 || math.IsNaN(wet+dry) || math.IsInf(wet+dry, 0) {
			return fmt.Errorf("reverb mix must be >= 0: wet=%f dry=%f: %w", wet, dry, core.ErrInvalidParameter)
		}
		cfg.wet, cfg.dry = wet, dry
		return nil
	}
}

type reverbComb struct {
	line  *delay.Line
	store float64
}

type reverbAllpass struct {
	line *delay.Line
}

// Reverb is a mono Schroeder reverb: eight damped feedback combs in parallel
// followed by four allpass diffusers. Line lengths are scaled from their
// 44.1 kHz tuning to the configured sample rate.
type Reverb struct {
	sampleRate float64
	room       float64
	damp       float64
	wet        float64
	dry        float64

	combs   [len(reverbCombTuning)]reverbComb
	allpass [len(reverbAllpassTuning)]reverbAllpass
}

// NewReverb builds a reverb for sampleRate.
func NewReverb(sampleRate float64, opts ...ReverbOption) (*Reverb, error) {
	if err := core.ValidateSampleRate("reverb", sampleRate); err != nil {
		return nil, err
	}

	cfg := reverbConfig{
		room: defaultReverbRoom,
		damp: defaultReverbDamp,
		wet:  defaultReverbWet,
		dry:  defaultReverbDry,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	r := &Reverb{
		sampleRate: sampleRate,
		room:       cfg.room,
		damp:       cfg.damp,
		wet:        cfg.wet,
		dry:        cfg.dry,
	}

	scale := sampleRate / reverbTuningRate
	for i, n := range reverbCombTuning {
		line, err := delay.New(scaledLength(n, scale))
		if err != nil {
			return nil, err
		}
		r.combs[i].line = line
	}
	for i, n := range reverbAllpassTuning {
		line, err := delay.New(scaledLength(n, scale))
		if err != nil {
			return nil, err
		}
		r.allpass[i].line = line
	}
	return r, nil
}

func scaledLength(n int, scale float64) int {
	return max(1, int(math.Round(float64(n)*scale)))
}

// Process processes one sample.
func (r *Reverb) Process(x float64) float64 {
	in := x * reverbInputGain

	var acc float64
	for i := range r.combs {
		c := &r.combs[i]
		out := c.line.Read(c.line.Len())
		c.store = out*(1-r.damp) + c.store*r.damp
		c.line.Write(in + c.store*r.room)
		acc += out
	}
	for i := range r.allpass {
		a := &r.allpass[i]
		buffered := a.line.Read(a.line.Len())
		a.line.Write(acc + buffered*reverbAllpassFB)
		acc = buffered - acc
	}
	return acc*r.wet + x*r.dry
}

// ProcessInPlace applies the reverb to buf in place.
func (r *Reverb) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = r.Process(buf[i])
	}
}

// Reset clears all line and damping state.
func (r *Reverb) Reset() {
	for i := range r.combs {
		r.combs[i].line.Reset()
		r.combs[i].store = 0
	}
	for i := range r.allpass {
		r.allpass[i].line.Reset()
	}
}

// SampleRate returns the sample rate in Hz.
func (r *Reverb) SampleRate() float64 { return r.sampleRate }

// Room returns the comb feedback.
func (r *Reverb) Room() float64 { return r.room }

// Damp returns the comb damping.
func (r *Reverb) Damp() float64 { return r.damp }
