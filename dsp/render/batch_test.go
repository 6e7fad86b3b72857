package render

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constJob(name string, v float64, n int) Job {
	return Job{
		Name:       name,
		Duration:   float64(n),
		SampleRate: 1,
		Build: func() (core.Generator, error) {
			return core.Constant(v), nil
		},
	}
}

func TestBatchPreservesJobOrder(t *testing.T) {
	jobs := make([]Job, 16)
	for i := range jobs {
		jobs[i] = constJob("c", float64(i), i+1)
	}

	out, err := Batch(context.Background(), jobs, 4)
	require.NoError(t, err)
	require.Len(t, out, len(jobs))
	for i, buf := range out {
		require.Len(t, buf, i+1)
		for _, v := range buf {
			require.Equal(t, float64(i), v)
		}
	}
}

func TestBatchIndependentGraphs(t *testing.T) {
	var builds atomic.Int32
	job := Job{
		Name:       "ramp",
		Duration:   1,
		SampleRate: 8,
		Build: func() (core.Generator, error) {
			builds.Add(1)
			n := 0.0
			return core.GeneratorFunc(func() float64 {
				n++
				return n
			}), nil
		},
	}

	out, err := Batch(context.Background(), []Job{job, job, job}, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), builds.Load())
	for _, buf := range out {
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, buf)
	}
}

func TestBatchBuildError(t *testing.T) {
	errBoom := errors.New("boom")
	jobs := []Job{
		constJob("ok", 1, 4),
		{
			Name:       "bad",
			Duration:   1,
			SampleRate: 1,
			Build:      func() (core.Generator, error) { return nil, errBoom },
		},
	}

	out, err := Batch(context.Background(), jobs, 1)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorContains(t, err, `"bad"`)
}

func TestBatchInvalidJob(t *testing.T) {
	_, err := Batch(context.Background(), []Job{{Name: "nil"}}, 1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = Batch(context.Background(), []Job{constJob("rate", 1, 1)}, 1)
	require.NoError(t, err)

	bad := constJob("rate", 1, 1)
	bad.SampleRate = 0
	_, err = Batch(context.Background(), []Job{bad}, 1)
	assert.ErrorIs(t, err, core.ErrInvalidSampleRate)
}

func TestBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var builds atomic.Int32
	job := constJob("c", 1, 1)
	build := job.Build
	job.Build = func() (core.Generator, error) {
		builds.Add(1)
		return build()
	}

	out, err := Batch(ctx, []Job{job, job}, 1)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), builds.Load())
}

func TestBatchEmpty(t *testing.T) {
	out, err := Batch(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, out)
}
