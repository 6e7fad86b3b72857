package effects

import (
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrusherValidation(t *testing.T) {
	for _, tc := range []struct {
		bits float64
		hold int
	}{
		{0.5, 1}, {25, 1}, {8, 0}, {8, 257},
	} {
		_, err := NewCrusher(tc.bits, tc.hold)
		require.ErrorIs(t, err, core.ErrInvalidParameter, "bits=%g hold=%d", tc.bits, tc.hold)
	}
}

func TestCrusherQuantizeAndHold(t *testing.T) {
	c, err := NewCrusher(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Bits())
	assert.Equal(t, 2, c.Hold())

	buf := []float64{0.3, 0.9, -0.3, 0.1, 2}
	c.ProcessInPlace(buf)
	assert.Equal(t, []float64{0.5, 0.5, -0.5, -0.5, 2}, buf)

	c.Reset()
	assert.Equal(t, 0.5, c.Process(0.3))
}

func TestCrusherHoldOneQuantizesEverySample(t *testing.T) {
	c, err := NewCrusher(1, 1)
	require.NoError(t, err)

	buf := []float64{0.2, 0.6, -0.6, -0.2}
	c.ProcessInPlace(buf)
	assert.Equal(t, []float64{0, 1, -1, 0}, buf)
}
