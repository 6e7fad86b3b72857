package emitter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerPeriodic(t *testing.T) {
	tr := NewTrigger(Periodic(1))
	assert.Equal(t, 1.0, tr.Next())

	assert.False(t, tr.Tick(0))
	assert.False(t, tr.Tick(0.5))
	assert.True(t, tr.Tick(1))
	assert.Equal(t, 2.0, tr.Next())
	assert.False(t, tr.Tick(1.5))
	assert.True(t, tr.Tick(2.25))
	assert.Equal(t, uint64(2), tr.Fired())
}

func TestTriggerLimitTwo(t *testing.T) {
	tr := NewTrigger(Limit(2, Periodic(1)))

	fired := 0
	for i := range 100 {
		if tr.Tick(float64(i) * 0.1) {
			fired++
		}
	}
	// The first duration seeds the schedule, the second is added after the
	// first pulse, and every later pull is +Inf.
	assert.Equal(t, 2, fired)
	assert.True(t, math.IsInf(tr.Next(), 1))
	assert.False(t, tr.Tick(1e12))
}

func TestTriggerSingleFirePerCall(t *testing.T) {
	tr := NewTrigger(Periodic(0.25))

	assert.True(t, tr.Tick(1))
	assert.Equal(t, 0.5, tr.Next())

	n := 1
	for tr.Tick(1) {
		n++
	}
	assert.Equal(t, 4, n)
	assert.Equal(t, 1.25, tr.Next())
}

func TestTriggerAtExactBoundary(t *testing.T) {
	tr := NewTrigger(Periodic(0.5))
	assert.True(t, tr.Tick(0.5))
	assert.False(t, tr.Tick(0.75))
	assert.True(t, tr.Tick(1.0))
}
