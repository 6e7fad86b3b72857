package filter

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBandPassRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name           string
		sr, center, q  float64
		wantSampleRate bool
	}{
		{"zero sample rate", 0, 1000, 1, true},
		{"negative sample rate", -1, 1000, 1, true},
		{"zero center", 44100, 0, 1, false},
		{"center at nyquist", 44100, 22050, 1, false},
		{"nan center", 44100, math.NaN(), 1, false},
		{"zero q", 44100, 1000, 0, false},
		{"negative q", 44100, 1000, -2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBandPass(tt.sr, tt.center, tt.q)
			require.Error(t, err)
			if tt.wantSampleRate {
				assert.True(t, errors.Is(err, core.ErrInvalidSampleRate))
			} else {
				assert.True(t, errors.Is(err, core.ErrInvalidParameter))
			}
		})
	}
}

func TestBandPassUnityGainAtCenter(t *testing.T) {
	const sr = 44100.0
	for _, tc := range []struct{ center, q float64 }{{1000, 10}, {2000, 20}, {300, 0.7}} {
		c, err := BandPassCoefficients(sr, tc.center, tc.q)
		require.NoError(t, err)

		h := c.Response(tc.center, sr)
		assert.InDelta(t, 1.0, cmplx.Abs(h), 1e-9, "center=%v q=%v", tc.center, tc.q)
		assert.True(t, c.Stable())
		assert.Less(t, c.MagnitudeDB(tc.center*4, sr), -6.0)
		assert.Less(t, c.MagnitudeDB(tc.center/4, sr), -6.0)
	}
}

func TestBandPassMatchesReferenceRecursion(t *testing.T) {
	const sr, center, q = 44100.0, 1000.0, 10.0
	f, err := NewBandPass(sr, center, q)
	require.NoError(t, err)

	w := 2 * math.Pi * center / sr
	alpha := math.Sin(w) / (2 * q)
	a0 := 1 + alpha
	b0, b2 := alpha/a0, -alpha/a0
	a1, a2 := -2*math.Cos(w)/a0, (1-alpha)/a0

	in := testutil.DeterministicNoise(3, 1, 512)
	var x1, x2, y1, y2 float64
	for i, x := range in {
		want := b0*x + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, want

		got := f.Process(x)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestBandPassInPlaceMatchesSample(t *testing.T) {
	a, err := NewBandPass(48000, 2000, 20)
	require.NoError(t, err)
	b, err := NewBandPass(48000, 2000, 20)
	require.NoError(t, err)

	in := testutil.DeterministicNoise(9, 0.5, 300)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = a.Process(x)
	}

	got := append([]float64(nil), in...)
	b.ProcessInPlace(got)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	b.Reset()
	assert.Equal(t, a.Coefficients().B0*in[0], b.Process(in[0]))
	assert.Equal(t, 2000.0, b.Center())
	assert.Equal(t, 20.0, b.Q())
	assert.Equal(t, 48000.0, b.SampleRate())
}
