// Package osc provides the clock primitives and waveform functions that sit at
// the leaves of every sound graph.
//
// [Phase] and [Clock] are per-sample accumulators: each call returns the
// current value and then advances by one sample period. The waveform
// functions ([Sin], [Square], [Saw], [Triangle], [Noise]) are pure mappings
// from phase or time to amplitude and keep no state, so the same input always
// yields the same output.
//
// A typical chain pulls the phase once per sample and feeds it to a waveform:
//
//	ph, _ := osc.NewPhase(44100)
//	sample := osc.Triangle(ph.Next(440))
package osc
