package core

// RenderConfig holds the host settings a sound effect graph is built for.
type RenderConfig struct {
	SampleRate int
	Seed       uint64
}

// RenderOption mutates a RenderConfig. Invalid values are ignored.
type RenderOption func(*RenderConfig)

// DefaultRenderConfig returns 44.1 kHz with seed 1.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SampleRate: 44100,
		Seed:       1,
	}
}

// WithSampleRate sets the rendering sample rate in Hz.
func WithSampleRate(sampleRate int) RenderOption {
	return func(cfg *RenderConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSeed sets the seed handed to noise, random emitters and voice
// parameter draws.
func WithSeed(seed uint64) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Seed = seed
	}
}

// ApplyRenderOptions applies opts on top of DefaultRenderConfig.
func ApplyRenderOptions(opts ...RenderOption) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
