package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Gain scales buf in place by g.
func Gain(buf []float64, g float64) {
	if len(buf) == 0 {
		return
	}
	vecmath.ScaleBlockInPlace(buf, g)
}

// Mix adds src into dst sample by sample. Only the overlapping prefix of the
// two buffers is mixed.
func Mix(dst, src []float64) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	vecmath.AddBlockInPlace(dst[:n], src[:n])
}

// Peak returns the largest absolute sample value in buf.
func Peak(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	return vecmath.MaxAbs(buf)
}

// Normalize scales buf in place so that its peak magnitude equals peak and
// returns the applied gain. A silent buffer is left unchanged with gain 1.
func Normalize(buf []float64, peak float64) (float64, error) {
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return 0, fmt.Errorf("normalize peak must be > 0: %f: %w", peak, core.ErrInvalidParameter)
	}
	current := Peak(buf)
	if current == 0 {
		return 1, nil
	}
	g := peak / current
	Gain(buf, g)
	return g, nil
}
