// Package render drives generator graphs into sample buffers.
//
// [Render] pulls a self-clocked [core.Generator] exactly
// int(duration*sampleRate) times; [RenderTimed] passes the elapsed time
// i/sampleRate to a [core.TimedGenerator] instead. The driver never clips,
// resamples or normalizes: amplitude is the graph's responsibility. [Gain],
// [Mix] and [Normalize] are separate buffer helpers for hosts that want them.
//
// Graphs are single-threaded. Independent graphs can be rendered in parallel
// with [Batch].
package render
