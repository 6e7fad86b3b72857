package playback

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrUnavailable is returned when no audio device backend is compiled in.
var ErrUnavailable = errors.New("playback: audio output unavailable")

// ErrSampleRateMismatch is returned when Play is called with a sample rate
// other than the one the device was opened with.
var ErrSampleRateMismatch = errors.New("playback: sample rate differs from open device")

// float32LE packs samples as little-endian IEEE float32, the device format.
func float32LE(samples []float64) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(float32(s)))
	}
	return out
}
