package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Point is one breakpoint of a Path.
type Point struct {
	Time  float64
	Value float64
}

// Path is a piecewise-linear envelope through time-ordered breakpoints.
//
// Before the first breakpoint it holds the first value; after the last it
// holds the last value. An empty path evaluates to 0 everywhere.
type Path struct {
	points []Point
}

// NewPath returns a path through points. Breakpoint times must be finite and
// strictly increasing.
func NewPath(points ...Point) (*Path, error) {
	for i, p := range points {
		if err := core.ValidateFinite("path envelope", "time", p.Time); err != nil {
			return nil, err
		}
		if err := core.ValidateFinite("path envelope", "value", p.Value); err != nil {
			return nil, err
		}
		if i > 0 && p.Time <= points[i-1].Time {
			return nil, fmt.Errorf("path envelope times must increase: point %d at %f after %f: %w",
				i, p.Time, points[i-1].Time, core.ErrInvalidParameter)
		}
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Path{points: pts}, nil
}

// Get returns the value at time t.
func (p *Path) Get(t float64) float64 {
	if len(p.points) == 0 {
		return 0
	}
	if t <= p.points[0].Time {
		return p.points[0].Value
	}
	for i := 0; i < len(p.points)-1; i++ {
		p0, p1 := p.points[i], p.points[i+1]
		if p0.Time <= t && t <= p1.Time {
			ratio := (t - p0.Time) / (p1.Time - p0.Time)
			return p0.Value + ratio*(p1.Value-p0.Value)
		}
	}
	return p.points[len(p.points)-1].Value
}

// Duration returns the time of the last breakpoint, or 0 for an empty path.
func (p *Path) Duration() float64 {
	if len(p.points) == 0 {
		return 0
	}
	return p.points[len(p.points)-1].Time
}

// Len returns the number of breakpoints.
func (p *Path) Len() int { return len(p.points) }

// Points returns a copy of the breakpoints.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}
