package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/delay"
)

// Delay is a feedback echo: y[n] = x[n] + feedback*buf[w], after which buf[w]
// is overwritten with y[n] and w advances. The echo period equals the buffer
// length, ceil(sampleRate*seconds) samples.
//
// Delay has no dry/wet control. The direct signal is always passed through.
type Delay struct {
	sampleRate   float64
	delaySeconds float64
	feedback     float64

	line *delay.Line
}

// NewDelay creates a feedback delay. seconds must be > 0. The feedback gain
// is not range-checked; values with magnitude >= 1 never decay.
func NewDelay(sampleRate, seconds, feedback float64) (*Delay, error) {
	if err := core.ValidateSampleRate("delay", sampleRate); err != nil {
		return nil, err
	}
	if err := core.ValidatePositive("delay", "time", seconds); err != nil {
		return nil, err
	}
	if err := core.ValidateFinite("delay", "feedback", feedback); err != nil {
		return nil, err
	}

	size := math.Ceil(sampleRate * seconds)
	if size > math.MaxInt32 {
		return nil, fmt.Errorf("delay time too long: %f s at %f Hz: %w", seconds, sampleRate, core.ErrInvalidParameter)
	}

	line, err := delay.New(int(size))
	if err != nil {
		return nil, err
	}

	return &Delay{
		sampleRate:   sampleRate,
		delaySeconds: seconds,
		feedback:     feedback,
		line:         line,
	}, nil
}

// Process processes one sample.
func (d *Delay) Process(input float64) float64 {
	out := input + d.feedback*d.line.Read(d.line.Len())
	d.line.Write(out)
	return out
}

// ProcessInPlace applies delay to buf in place.
func (d *Delay) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.Process(buf[i])
	}
}

// Reset clears delay state.
func (d *Delay) Reset() {
	d.line.Reset()
}

// SampleRate returns sample rate in Hz.
func (d *Delay) SampleRate() float64 { return d.sampleRate }

// Time returns the requested delay time in seconds.
func (d *Delay) Time() float64 { return d.delaySeconds }

// Feedback returns the feedback gain.
func (d *Delay) Feedback() float64 { return d.feedback }

// Len returns the echo period in samples.
func (d *Delay) Len() int { return d.line.Len() }
