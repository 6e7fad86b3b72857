package filter

import "math"

// Alpha returns the one-pole smoothing coefficient dt/(rc+dt) for a cutoff
// frequency in Hz, where rc = 1/(2*pi*cutoff) and dt = 1/sampleRate.
//
// Alpha is cheap enough to call every sample when the cutoff is modulated.
func Alpha(sampleRate, cutoff float64) float64 {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / sampleRate
	return dt / (rc + dt)
}

// LowPass is a one-pole low-pass filter: y[n] = y[n-1] + alpha*(x[n] - y[n-1]).
type LowPass struct {
	y1 float64
}

// NewLowPass returns a low-pass filter with zero history.
func NewLowPass() *LowPass { return &LowPass{} }

// Process filters x with coefficient alpha.
func (f *LowPass) Process(alpha, x float64) float64 {
	y := f.y1 + alpha*(x-f.y1)
	f.y1 = y
	return y
}

// Reset clears the filter history.
func (f *LowPass) Reset() { f.y1 = 0 }

// HighPass is a one-pole high-pass filter: y[n] = alpha*(y[n-1] + x[n] - x[n-1]).
type HighPass struct {
	x1, y1 float64
}

// NewHighPass returns a high-pass filter with zero history.
func NewHighPass() *HighPass { return &HighPass{} }

// Process filters x with coefficient alpha.
func (f *HighPass) Process(alpha, x float64) float64 {
	y := alpha * (f.y1 + x - f.x1)
	f.x1 = x
	f.y1 = y
	return y
}

// Reset clears the filter history.
func (f *HighPass) Reset() { f.x1, f.y1 = 0, 0 }
