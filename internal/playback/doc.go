// Package playback plays rendered buffers on the default audio device.
//
// Device output goes through github.com/ebitengine/oto/v3. The process can
// hold a single oto context, so the first Play fixes the sample rate for the
// rest of the run. Building with -tags headless replaces the device backend
// with one that always reports ErrUnavailable.
package playback
