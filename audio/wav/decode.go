package wav

import (
	"fmt"
	"io"
	"math"

	gowav "github.com/go-audio/wav"
)

// Decode reads a mono WAV file written in one of the supported formats. PCM16
// words are scaled by 1/32767, the inverse of the encoder's quantization.
func Decode(r io.ReadSeeker) ([]float64, int, Format, error) {
	d := gowav.NewDecoder(r)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("wav: decode: %w", err)
	}
	if d.NumChans != 1 {
		return nil, 0, 0, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, d.NumChans)
	}

	// The decoder reads past the data chunk into trailing chunks.
	data := buf.Data
	if n := d.PCMSize / int(max(d.BitDepth/8, 1)); n < len(data) {
		data = data[:n]
	}

	sampleRate := int(d.SampleRate)
	out := make([]float64, len(data))

	switch {
	case d.WavAudioFormat == tagPCM && d.BitDepth == 16:
		for i, v := range data {
			out[i] = float64(v) / math.MaxInt16
		}
		return out, sampleRate, FormatPCM16, nil
	case d.WavAudioFormat == tagIEEEFloat && d.BitDepth == 32:
		for i, v := range data {
			out[i] = float64(math.Float32frombits(uint32(int32(v))))
		}
		return out, sampleRate, FormatFloat32, nil
	default:
		return nil, 0, 0, fmt.Errorf("%w: tag %d, %d bits", ErrUnsupportedFormat, d.WavAudioFormat, d.BitDepth)
	}
}
