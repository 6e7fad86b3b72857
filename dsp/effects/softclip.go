package effects

import "math"

// SoftClip returns tanh(factor*x). Larger factors drive harder into
// saturation; the output always lies in (-1, 1).
func SoftClip(factor, x float64) float64 {
	return math.Tanh(factor * x)
}

// SoftClipBlock applies SoftClip to buf in place.
func SoftClipBlock(factor float64, buf []float64) {
	for i, x := range buf {
		buf[i] = math.Tanh(factor * x)
	}
}

// SoftClipper is the Processor form of SoftClip, usable as a final limiter.
type SoftClipper struct {
	Factor float64
}

// Process returns tanh(Factor*x).
func (s SoftClipper) Process(x float64) float64 {
	return math.Tanh(s.Factor * x)
}
