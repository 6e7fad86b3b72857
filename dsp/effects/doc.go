// Package effects provides per-sample effect processors for sound effect
// graphs.
//
//   - Delay: feedback echo whose period equals its buffer length.
//   - SoftClip: tanh saturation, as a function, block and Processor.
//   - Reverb: damped comb and allpass room tail.
//   - Crusher: bit-depth and sample-and-hold rate reduction.
//
// All processors implement core.Processor and run without allocation once
// constructed.
package effects
