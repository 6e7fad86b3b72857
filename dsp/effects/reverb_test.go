package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverbValidation(t *testing.T) {
	_, err := NewReverb(0)
	require.ErrorIs(t, err, core.ErrInvalidSampleRate)

	for _, opt := range []ReverbOption{
		WithReverbRoom(1),
		WithReverbRoom(-0.1),
		WithReverbDamp(1.5),
		WithReverbMix(-1, 1),
		WithReverbMix(1, math.NaN()),
	} {
		_, err := NewReverb(44100, opt)
		require.ErrorIs(t, err, core.ErrInvalidParameter)
	}

	r, err := NewReverb(44100, nil, WithReverbRoom(0.8), WithReverbDamp(0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.8, r.Room())
	assert.Equal(t, 0.2, r.Damp())
	assert.Equal(t, 44100.0, r.SampleRate())
}

func TestReverbFirstReflection(t *testing.T) {
	for _, tc := range []struct {
		sampleRate float64
		first      int
	}{
		{44100, 1116},
		{22050, 558},
	} {
		r, err := NewReverb(tc.sampleRate, WithReverbMix(1, 0))
		require.NoError(t, err)

		out := testutil.Apply(r, testutil.Impulse(4*tc.first, 0))
		for i := 0; i < tc.first; i++ {
			require.Zero(t, out[i], "sample %d at %g Hz", i, tc.sampleRate)
		}
		assert.NotZero(t, out[tc.first])
		testutil.RequireFinite(t, out)
	}
}

func TestReverbDryOnlyPassesInput(t *testing.T) {
	r, err := NewReverb(8000, WithReverbMix(0, 1))
	require.NoError(t, err)

	in := testutil.DeterministicSine(440, 8000, 0.5, 512)
	assert.Equal(t, in, testutil.Apply(r, in))
}

func TestReverbResetAndBlockMatchScalar(t *testing.T) {
	r, err := NewReverb(16000)
	require.NoError(t, err)

	in := testutil.DeterministicNoise(3, 0.5, 2048)
	want := testutil.Apply(r, in)

	r.Reset()
	got := append([]float64(nil), in...)
	r.ProcessInPlace(got)
	testutil.RequireSliceNearlyEqual(t, want, got, 1e-12)
}
