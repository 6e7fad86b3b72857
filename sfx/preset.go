package sfx

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/render"
)

// DefaultSeed is the seed of the reference renderings. It matches
// core.DefaultRenderConfig.
const DefaultSeed uint64 = 1

// Preset describes a named sound effect graph.
type Preset struct {
	Name        string
	Description string
	// Duration is the natural render length in seconds.
	Duration float64
	// Build returns a fresh generator for sampleRate.
	Build func(sampleRate int, seed uint64) (core.Generator, error)
}

var presets = []Preset{
	{Name: "bomb", Description: "granular rumble of 200 short sine grains under a 2 s decay", Duration: 2, Build: buildBomb},
	{Name: "defeat", Description: "falling triangle tone through a quarter-second echo", Duration: 2, Build: buildDefeat},
	{Name: "ping", Description: "short FM bell with a fast exponential decay", Duration: 0.3, Build: buildPing},
	{Name: "hit", Description: "band-passed noise burst at 1 kHz", Duration: 1, Build: buildHit},
	{Name: "hit-self", Description: "triangle blip with a dipping pitch path", Duration: 0.3, Build: buildHitSelf},
	{Name: "shoot", Description: "narrow band-passed noise click at 2 kHz", Duration: 0.2, Build: buildShoot},
	{Name: "zap", Description: "soft-clipped saw and noise through a closing low-pass", Duration: 1, Build: buildZap},
}

// Presets returns every preset in a stable order. The returned slice is a
// copy.
func Presets() []Preset {
	return slices.Clone(presets)
}

// Names returns the preset names in the order of Presets.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the preset called name.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("sfx preset %q not found: %w", name, core.ErrInvalidParameter)
}

// Render builds p for the configured sample rate and seed and renders its
// natural duration.
func (p Preset) Render(opts ...core.RenderOption) ([]float64, error) {
	cfg := core.ApplyRenderOptions(opts...)
	g, err := p.Build(cfg.SampleRate, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("sfx preset %s: %w", p.Name, err)
	}
	return render.Render(p.Duration, cfg.SampleRate, g)
}
