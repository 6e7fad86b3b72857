//go:build headless

package playback

import "context"

// Play always fails with ErrUnavailable in headless builds.
func Play(_ context.Context, _ []float64, _ int) error {
	return ErrUnavailable
}
