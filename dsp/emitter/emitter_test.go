package emitter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodic(t *testing.T) {
	p := Periodic(0.25)
	for range 5 {
		assert.Equal(t, 0.25, p.Next())
	}
}

func TestEmitterFunc(t *testing.T) {
	n := 0.0
	f := EmitterFunc(func() float64 {
		n++
		return n
	})
	assert.Equal(t, 1.0, f.Next())
	assert.Equal(t, 2.0, f.Next())
}

func TestRandomRange(t *testing.T) {
	r, err := NewRandom(7, 0.001, 0.01)
	require.NoError(t, err)

	for i := range 10000 {
		v := r.Next()
		if v < 0.001 || v >= 0.01 {
			t.Fatalf("sample %d out of range: %g", i, v)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, err := NewRandom(42, 0.5, 1)
	require.NoError(t, err)
	b, err := NewRandom(42, 0.5, 1)
	require.NoError(t, err)
	c, err := NewRandom(43, 0.5, 1)
	require.NoError(t, err)

	same := true
	for range 64 {
		va, vb, vc := a.Next(), b.Next(), c.Next()
		require.Equal(t, va, vb)
		if va != vc {
			same = false
		}
	}
	assert.False(t, same, "different seeds produced identical sequences")
}

func TestRandomDegenerateRange(t *testing.T) {
	r, err := NewRandom(1, 0.5, 0.5)
	require.NoError(t, err)
	for range 10 {
		assert.Equal(t, 0.5, r.Next())
	}
}

func TestRandomValidation(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"inverted", 2, 1},
		{"nan min", math.NaN(), 1},
		{"inf max", 0.5, math.Inf(1)},
		{"zero range", 0, 0},
		{"zero min", 0, 1},
		{"negative min", -1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRandom(1, tt.min, tt.max)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidParameter))
		})
	}

	_, err := NewRandomFrom(nil, 0.5, 1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestNewPeriodic(t *testing.T) {
	p, err := NewPeriodic(0.25)
	require.NoError(t, err)
	assert.Equal(t, Periodic(0.25), p)

	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewPeriodic(d)
		assert.ErrorIs(t, err, core.ErrInvalidParameter, "period %v", d)
	}
}

func TestRandomTriggerAdvances(t *testing.T) {
	r, err := NewRandom(1, 0.001, 0.001)
	require.NoError(t, err)

	tr := NewTrigger(r)
	fired := 0
	for tr.Tick(0.01) {
		fired++
		require.Less(t, fired, 100, "trigger did not advance")
	}
	assert.Greater(t, tr.Next(), 0.01)
}

func TestRandomFromSharedRand(t *testing.T) {
	rng := NewRand(9)
	want := Uniform(NewRand(9), 1, 2)

	r, err := NewRandomFrom(rng, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, want, r.Next())
}

func TestLimit(t *testing.T) {
	l := Limit(3, Periodic(0.1))
	assert.False(t, l.Exhausted())
	for range 3 {
		assert.Equal(t, 0.1, l.Next())
	}
	assert.True(t, l.Exhausted())
	for range 5 {
		assert.True(t, math.IsInf(l.Next(), 1))
	}
}

func TestLimitStopsPullingInner(t *testing.T) {
	pulls := 0
	inner := EmitterFunc(func() float64 {
		pulls++
		return 1
	})
	l := Limit(2, inner)
	for range 10 {
		l.Next()
	}
	assert.Equal(t, 2, pulls)
}

func TestLimitZero(t *testing.T) {
	l := Limit(0, Periodic(1))
	assert.True(t, math.IsInf(l.Next(), 1))
}
