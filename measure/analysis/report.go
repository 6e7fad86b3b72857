package analysis

import (
	"fmt"
	"strings"
)

// Report combines level and spectral statistics of one buffer.
type Report struct {
	Level     Level
	Centroid  float64 // Hz
	Dominant  float64 // Hz
	Rolloff   float64 // Hz
	Flatness  float64
	FFTFrames int
}

// Measure analyzes samples with the default frame size.
func Measure(samples []float64, sampleRate float64) (Report, error) {
	sp, err := PowerSpectrum(samples, sampleRate, DefaultFFTSize)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Level:     MeasureLevel(samples, sampleRate),
		Centroid:  sp.Centroid(),
		Dominant:  sp.Dominant(),
		Rolloff:   sp.Rolloff(RolloffFraction),
		Flatness:  sp.Flatness(),
		FFTFrames: sp.Frames,
	}, nil
}

// String formats the report as aligned key/value lines.
func (r Report) String() string {
	var b strings.Builder
	lv := r.Level
	fmt.Fprintf(&b, "samples:    %d (%.3f s)\n", lv.Length, lv.Duration)
	fmt.Fprintf(&b, "peak:       %.4f (%.2f dBFS) at %d\n", lv.Peak, lv.PeakDB, lv.PeakPos)
	fmt.Fprintf(&b, "rms:        %.4f (%.2f dBFS)\n", lv.RMS, lv.RMSDB)
	fmt.Fprintf(&b, "crest:      %.2f dB\n", lv.CrestDB)
	fmt.Fprintf(&b, "dc:         %.6f\n", lv.DC)
	fmt.Fprintf(&b, "clipped:    %d\n", lv.Clipped)
	fmt.Fprintf(&b, "tail:       %.3f s\n", lv.Tail)
	fmt.Fprintf(&b, "centroid:   %.1f Hz\n", r.Centroid)
	fmt.Fprintf(&b, "dominant:   %.1f Hz\n", r.Dominant)
	fmt.Fprintf(&b, "rolloff:    %.1f Hz\n", r.Rolloff)
	fmt.Fprintf(&b, "flatness:   %.3f\n", r.Flatness)
	return b.String()
}
