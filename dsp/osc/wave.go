package osc

import "math"

// Waveform maps a phase (in cycles) to an amplitude.
type Waveform func(t float64) float64

// Sin returns sin(2*pi*t).
func Sin(t float64) float64 {
	return math.Sin(2 * math.Pi * t)
}

// Square returns +1 for the first half of each cycle and -1 for the second.
// The cycle position uses math.Mod, so negative t keeps its sign.
func Square(t float64) float64 {
	if math.Mod(t, 1) < 0.5 {
		return 1
	}
	return -1
}

// Saw returns a ramp in [-1, 1) centered on integer t.
func Saw(t float64) float64 {
	return 2 * (t - math.Floor(t+0.5))
}

// Triangle returns a triangle wave in [-1, 1] that peaks at integer t.
func Triangle(t float64) float64 {
	return 2*math.Abs(2*(t-math.Floor(t+0.5))) - 1
}

// Noise returns a deterministic pseudo-random value in (-1, 1] for the
// millisecond bucket floor(t*1000) offset by seed. Identical (seed, t) pairs
// always produce identical output.
func Noise(seed uint32, t float64) float64 {
	x := saturateUint32(math.Floor(t*1000)) + seed
	x = (x >> 13) ^ x
	x = (x*(x*x*15731+789221) + 1376312589) & 0x7fffffff
	return 1 - float64(x)/1073741824
}

// saturateUint32 converts v to uint32, clamping out-of-range values and
// mapping NaN to 0.
func saturateUint32(v float64) uint32 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
