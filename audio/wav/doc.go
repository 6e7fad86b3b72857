// Package wav writes and reads mono WAV files for rendered sample buffers.
//
// Two sample formats are supported: 16-bit integer PCM, which quantizes
// x*32767 toward zero and saturates out-of-range samples, and 32-bit IEEE
// float. RIFF chunk handling is delegated to github.com/go-audio/wav.
package wav
