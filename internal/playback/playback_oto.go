//go:build !headless

package playback

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const pollInterval = 10 * time.Millisecond

var device struct {
	once       sync.Once
	ctx        *oto.Context
	sampleRate int
	err        error
}

func open(sampleRate int) (*oto.Context, error) {
	device.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
			BufferSize:   50 * time.Millisecond,
		})
		if err != nil {
			device.err = fmt.Errorf("playback: open device: %w", err)
			return
		}
		<-ready
		device.ctx = ctx
		device.sampleRate = sampleRate
	})
	if device.err != nil {
		return nil, device.err
	}
	if device.sampleRate != sampleRate {
		return nil, fmt.Errorf("%w: %d Hz, device at %d Hz", ErrSampleRateMismatch, sampleRate, device.sampleRate)
	}
	return device.ctx, nil
}

// Play writes samples to the default output device and blocks until they
// have been played or ctx is done.
func Play(ctx context.Context, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("playback sample rate must be > 0: %d", sampleRate)
	}
	if len(samples) == 0 {
		return nil
	}

	dev, err := open(sampleRate)
	if err != nil {
		return err
	}

	player := dev.NewPlayer(bytes.NewReader(float32LE(samples)))
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			_ = player.Close()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	if err := player.Err(); err != nil {
		_ = player.Close()
		return fmt.Errorf("playback: %w", err)
	}
	return player.Close()
}
