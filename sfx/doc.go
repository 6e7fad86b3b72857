// Package sfx contains ready-made sound effect graphs built from the dsp
// packages.
//
// Each [Preset] names a graph, its natural length and a builder. Builders are
// cheap and return a fresh, single-use generator:
//
//	p, _ := sfx.Lookup("zap")
//	g, _ := p.Build(44100, 1)
//	samples, _ := render.Render(p.Duration, 44100, g)
//
// The seed selects the noise hash and the PRNG streams of the randomized
// presets. Seed 1 yields the reference rendering of every preset.
package sfx
