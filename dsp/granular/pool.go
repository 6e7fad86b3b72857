package granular

import (
	"github.com/cwbudde/algo-sfx/dsp/core"
)

type voice struct {
	gen       core.Generator
	remaining int
}

// Pool owns a set of active voices in insertion order and mixes them one
// sample at a time.
//
// Pool is not thread-safe.
type Pool struct {
	sampleRate float64
	voices     []voice
}

// NewPool returns an empty pool for the given sample rate.
func NewPool(sampleRate float64) (*Pool, error) {
	if err := core.ValidateSampleRate("granular pool", sampleRate); err != nil {
		return nil, err
	}
	return &Pool{sampleRate: sampleRate}, nil
}

// Add inserts g with a lifetime of int(seconds*sampleRate) samples. The
// product truncates toward zero; negative lifetimes are clamped to zero.
// A nil g is ignored.
func (p *Pool) Add(g core.Generator, seconds float64) {
	if g == nil {
		return
	}
	lifetime := int(seconds * p.sampleRate)
	if lifetime < 0 {
		lifetime = 0
	}
	p.voices = append(p.voices, voice{gen: g, remaining: lifetime})
}

// AddFunc inserts a closure voice. See Add.
func (p *Pool) AddFunc(fn func() float64, seconds float64) {
	if fn == nil {
		return
	}
	p.Add(core.GeneratorFunc(fn), seconds)
}

// Tick advances every voice by one sample and returns their sum. Expired
// voices are dropped in place, preserving the order of the survivors.
func (p *Pool) Tick() float64 {
	var sum float64
	for i := range p.voices {
		v := &p.voices[i]
		v.remaining--
		sum += v.gen.Next()
	}

	n := 0
	for _, v := range p.voices {
		if v.remaining <= 0 {
			continue
		}
		p.voices[n] = v
		n++
	}
	clear(p.voices[n:])
	p.voices = p.voices[:n]
	return sum
}

// Next implements core.Generator.
func (p *Pool) Next() float64 { return p.Tick() }

// Len returns the number of active voices.
func (p *Pool) Len() int { return len(p.voices) }

// SampleRate returns the pool's sample rate in Hz.
func (p *Pool) SampleRate() float64 { return p.sampleRate }

// Reset drops every voice.
func (p *Pool) Reset() {
	clear(p.voices)
	p.voices = p.voices[:0]
}
