package envelope

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathTriangle(t *testing.T) {
	p, err := NewPath(Point{0, 0}, Point{1, 10}, Point{2, 0})
	require.NoError(t, err)

	assert.Equal(t, 5.0, p.Get(0.5))
	assert.Equal(t, 5.0, p.Get(1.5))
	assert.Equal(t, 0.0, p.Get(-1))
	assert.Equal(t, 0.0, p.Get(5))
	assert.Equal(t, 10.0, p.Get(1))
	assert.Equal(t, 2.0, p.Duration())
	assert.Equal(t, 3, p.Len())
}

func TestPathHoldsEndValues(t *testing.T) {
	p, err := NewPath(Point{0.1, 200}, Point{0.2, 100})
	require.NoError(t, err)

	assert.Equal(t, 200.0, p.Get(0))
	assert.Equal(t, 200.0, p.Get(0.1))
	assert.Equal(t, 100.0, p.Get(0.3))
	assert.InDelta(t, 150.0, p.Get(0.15), 1e-9)
}

func TestEmptyPath(t *testing.T) {
	p, err := NewPath()
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Get(-1))
	assert.Equal(t, 0.0, p.Get(0))
	assert.Equal(t, 0.0, p.Get(100))
	assert.Equal(t, 0.0, p.Duration())
}

func TestSinglePointPath(t *testing.T) {
	p, err := NewPath(Point{1, 0.7})
	require.NoError(t, err)

	assert.Equal(t, 0.7, p.Get(0))
	assert.Equal(t, 0.7, p.Get(2))
}

func TestNewPathRejectsUnorderedOrNonFinite(t *testing.T) {
	_, err := NewPath(Point{0, 0}, Point{0, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))

	_, err = NewPath(Point{1, 0}, Point{0.5, 1})
	require.Error(t, err)

	_, err = NewPath(Point{math.NaN(), 0})
	require.Error(t, err)

	_, err = NewPath(Point{0, math.Inf(1)})
	require.Error(t, err)
}

func TestPathCopiesInput(t *testing.T) {
	pts := []Point{{0, 1}, {1, 2}}
	p, err := NewPath(pts...)
	require.NoError(t, err)

	pts[0].Value = 99
	assert.Equal(t, 1.0, p.Get(0))

	out := p.Points()
	out[1].Value = 42
	assert.Equal(t, 2.0, p.Get(1))
}
