// Package filter provides the stateful per-sample filters used by sound
// graphs: one-pole low/high-pass smoothers with a per-call coefficient and a
// fixed band-pass biquad.
//
// One-pole filters take their coefficient on every call so an envelope can
// sweep the cutoff; compute it with [Alpha]. Filters never check their input
// for NaN or Inf. Non-finite samples propagate.
package filter
