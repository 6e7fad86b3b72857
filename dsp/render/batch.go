package render

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"golang.org/x/sync/errgroup"
)

// Job describes one independent render. Build is called on the worker that
// renders the job, so every job owns a freshly built graph.
type Job struct {
	Name       string
	Duration   float64
	SampleRate int
	Build      func() (core.Generator, error)
}

// Batch renders jobs concurrently with at most workers goroutines and
// returns the buffers in job order. workers <= 0 uses GOMAXPROCS.
//
// ctx is checked before each job starts; a render in progress always runs
// to completion. The first failing job cancels the jobs not yet started and
// its error is returned.
func Batch(ctx context.Context, jobs []Job, workers int) ([][]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([][]float64, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if job.Build == nil {
				return fmt.Errorf("render job %q: build must not be nil: %w", job.Name, core.ErrInvalidParameter)
			}
			gen, err := job.Build()
			if err != nil {
				return fmt.Errorf("render job %q: %w", job.Name, err)
			}
			buf, err := Render(job.Duration, job.SampleRate, gen)
			if err != nil {
				return fmt.Errorf("render job %q: %w", job.Name, err)
			}
			out[i] = buf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
