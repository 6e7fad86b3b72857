// Package envelope provides time-to-gain evaluators.
//
// Envelopes are immutable after construction and evaluated at an elapsed
// time, usually taken from an osc.Clock. Both types report their terminal
// time through Duration so hosts can size the total note length.
package envelope
