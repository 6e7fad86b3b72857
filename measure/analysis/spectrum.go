package analysis

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultFFTSize is the frame length used by Measure.
const DefaultFFTSize = 2048

// RolloffFraction is the share of spectral energy below the rolloff
// frequency.
const RolloffFraction = 0.85

// Spectrum is a frame-averaged one-sided power spectrum.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Frames     int
	// Power holds FFTSize/2+1 bins from DC to Nyquist.
	Power []float64
}

// BinFrequency returns the center frequency of bin i in Hz.
func (s Spectrum) BinFrequency(i int) float64 {
	return float64(i) * s.SampleRate / float64(s.FFTSize)
}

// PowerSpectrum averages the power spectra of Hann-windowed frames of fftSize
// samples with 50% overlap. Buffers shorter than one frame are zero-padded.
func PowerSpectrum(samples []float64, sampleRate float64, fftSize int) (Spectrum, error) {
	if err := core.ValidateSampleRate("power spectrum", sampleRate); err != nil {
		return Spectrum{}, err
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return Spectrum{}, fmt.Errorf("power spectrum fft size must be a power of two >= 2: %d: %w", fftSize, core.ErrInvalidParameter)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("power spectrum: %w", err)
	}

	bins := fftSize/2 + 1
	sp := Spectrum{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Power:      make([]float64, bins),
	}

	win, err := window.Hann(fftSize, window.WithPeriodic())
	if err != nil {
		return Spectrum{}, fmt.Errorf("power spectrum: %w", err)
	}
	frame := make([]float64, fftSize)
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pow := make([]float64, bins)

	hop := fftSize / 2
	for start := 0; start == 0 || start+fftSize <= len(samples); start += hop {
		core.Zero(frame)
		copy(frame, samples[min(start, len(samples)):])
		vecmath.MulBlockInPlace(frame, win)
		for i, v := range frame {
			in[i] = complex(v, 0)
		}
		if err := plan.Forward(out, in); err != nil {
			return Spectrum{}, fmt.Errorf("power spectrum: %w", err)
		}
		for i := range bins {
			re[i] = real(out[i])
			im[i] = imag(out[i])
		}
		vecmath.Power(pow, re, im)
		vecmath.AddBlockInPlace(sp.Power, pow)
		sp.Frames++
	}

	vecmath.ScaleBlockInPlace(sp.Power, 1/float64(sp.Frames))
	return sp, nil
}

// Centroid returns the magnitude-weighted mean frequency in Hz, or 0 for a
// silent spectrum. The DC bin is ignored.
func (s Spectrum) Centroid() float64 {
	var weighted, total float64
	for i := 1; i < len(s.Power); i++ {
		m := mathSqrt(s.Power[i])
		weighted += s.BinFrequency(i) * m
		total += m
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// Dominant returns the frequency of the strongest non-DC bin, refined by
// parabolic interpolation over neighbouring log-power bins.
func (s Spectrum) Dominant() float64 {
	if len(s.Power) < 3 {
		return 0
	}
	best := 1
	for i := 2; i < len(s.Power); i++ {
		if s.Power[i] > s.Power[best] {
			best = i
		}
	}
	if s.Power[best] == 0 {
		return 0
	}
	if best == len(s.Power)-1 {
		return s.BinFrequency(best)
	}

	a, b, c := s.Power[best-1], s.Power[best], s.Power[best+1]
	if a <= 0 || c <= 0 {
		return s.BinFrequency(best)
	}
	la, lb, lc := mathLog(a), mathLog(b), mathLog(c)
	den := la - 2*lb + lc
	if den == 0 {
		return s.BinFrequency(best)
	}
	delta := 0.5 * (la - lc) / den
	return (float64(best) + delta) * s.SampleRate / float64(s.FFTSize)
}

// Rolloff returns the frequency below which fraction of the spectral energy
// lies.
func (s Spectrum) Rolloff(fraction float64) float64 {
	total := vecmath.Sum(s.Power)
	if total == 0 {
		return 0
	}
	target := fraction * total
	var acc float64
	for i, p := range s.Power {
		acc += p
		if acc >= target {
			return s.BinFrequency(i)
		}
	}
	return s.BinFrequency(len(s.Power) - 1)
}

// Flatness returns the spectral flatness in [0, 1]: the ratio of the
// geometric to the arithmetic mean of the non-DC bin magnitudes. It is near 1
// for white noise and near 0 for pure tones.
func (s Spectrum) Flatness() float64 {
	n := len(s.Power) - 1
	if n < 1 {
		return 0
	}
	var sumLin, sumLog float64
	for _, p := range s.Power[1:] {
		if p <= 0 {
			return 0
		}
		m := mathSqrt(p)
		sumLin += m
		sumLog += mathLog(m)
	}
	mean := sumLin / float64(n)
	if mean == 0 {
		return 0
	}
	return min(mathExp(sumLog/float64(n))/mean, 1)
}
