// Package analysis summarizes rendered sound effects.
//
// [Measure] reports level statistics in the time domain (peak, RMS, crest
// factor, clipping, decay tail) and a frequency summary (spectral centroid,
// dominant frequency, rolloff, flatness) from Hann-windowed FFT frames
// averaged over the whole buffer.
//
// Build with -tags fastmath to use the approximations from
// github.com/meko-christian/algo-approx for the per-bin square roots and
// logarithms.
package analysis
