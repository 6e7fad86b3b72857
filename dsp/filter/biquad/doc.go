// Package biquad provides the second-order IIR runtime used by the band-pass
// filter.
//
// A [Section] runs the direct-form-I recursion
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// with a0 normalized to 1, keeping the two previous inputs and outputs as
// state. Coefficients are plain values; designs live in dsp/filter.
package biquad
