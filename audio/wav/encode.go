package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

type config struct {
	title     string
	comment   string
	dither    bool
	ditherSrc int64
}

// Option configures Encode.
type Option func(*config)

// WithTitle stores title in the file's INFO metadata.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithComment stores comment in the file's INFO metadata.
func WithComment(comment string) Option {
	return func(c *config) { c.comment = comment }
}

// WithDither adds seeded TPDF dither of one LSB before 16-bit quantization.
// It has no effect on float output.
func WithDither(seed int64) Option {
	return func(c *config) {
		c.dither = true
		c.ditherSrc = seed
	}
}

// Encode writes samples as a mono WAV file to w.
//
// The file is assembled in memory, so w does not need to support seeking.
func Encode(w io.Writer, samples []float64, sampleRate int, format Format, opts ...Option) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidSampleRate)
	}
	if format != FormatPCM16 && format != FormatFloat32 {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	file := &memFile{}
	enc := gowav.NewEncoder(file, sampleRate, format.bitDepth(), 1, format.tag())
	if cfg.title != "" || cfg.comment != "" {
		enc.Metadata = &gowav.Metadata{
			Title:    cfg.title,
			Comments: cfg.comment,
			Software: "algo-sfx",
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           quantize(samples, format, cfg),
		SourceBitDepth: format.bitDepth(),
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}

	_, err := w.Write(file.Bytes())
	return err
}

// quantize converts samples to the integer words the encoder writes. Float
// samples travel as the bit patterns of their float32 values.
func quantize(samples []float64, format Format, cfg config) []int {
	out := make([]int, len(samples))

	if format == FormatFloat32 {
		for i, s := range samples {
			out[i] = int(int32(math.Float32bits(float32(s))))
		}
		return out
	}

	scaled := make([]float64, len(samples))
	vecmath.ScaleBlock(scaled, samples, math.MaxInt16)
	if cfg.dither {
		vecmath.AddDitherTPDF(scaled, 1, vecmath.NewDitherState(cfg.ditherSrc))
	}
	for i, v := range scaled {
		out[i] = int(saturateInt16(v))
	}
	return out
}

// PCM16 converts one sample to a 16-bit word: x*32767 truncated toward zero,
// saturated to the int16 range, with NaN mapping to 0.
func PCM16(x float64) int16 {
	return saturateInt16(x * math.MaxInt16)
}

func saturateInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
