package osc

import "github.com/cwbudde/algo-sfx/dsp/core"

// Clock counts elapsed seconds one sample period at a time.
//
// The elapsed time is derived from an integer sample counter, so the n-th
// call always returns exactly n/sampleRate regardless of how long the clock
// has been running.
type Clock struct {
	sampleRate float64
	n          uint64
}

// NewClock returns a clock starting at 0 seconds.
func NewClock(sampleRate float64) (*Clock, error) {
	if err := core.ValidateSampleRate("clock", sampleRate); err != nil {
		return nil, err
	}
	return &Clock{sampleRate: sampleRate}, nil
}

// Next returns the current elapsed time and advances by one sample.
func (c *Clock) Next() float64 {
	t := float64(c.n) / c.sampleRate
	c.n++
	return t
}

// Elapsed returns the current elapsed time without advancing.
func (c *Clock) Elapsed() float64 { return float64(c.n) / c.sampleRate }

// Samples returns the number of samples counted so far.
func (c *Clock) Samples() uint64 { return c.n }

// SampleRate returns the sample rate in Hz.
func (c *Clock) SampleRate() float64 { return c.sampleRate }

// Reset rewinds the clock to 0.
func (c *Clock) Reset() { c.n = 0 }
