package core

// Generator produces one sample per call and advances its own state.
type Generator interface {
	Next() float64
}

// GeneratorFunc adapts a closure to Generator.
type GeneratorFunc func() float64

// Next calls f.
func (f GeneratorFunc) Next() float64 { return f() }

// TimedGenerator produces the sample at an externally supplied elapsed time.
type TimedGenerator interface {
	At(t float64) float64
}

// TimedFunc adapts a closure to TimedGenerator.
type TimedFunc func(t float64) float64

// At calls f.
func (f TimedFunc) At(t float64) float64 { return f(t) }

// Processor consumes one input sample and returns one output sample.
type Processor interface {
	Process(x float64) float64
}

// ProcessorFunc adapts a closure to Processor.
type ProcessorFunc func(x float64) float64

// Process calls f.
func (f ProcessorFunc) Process(x float64) float64 { return f(x) }

// Constant is a Generator that always returns its value.
type Constant float64

// Next returns c.
func (c Constant) Next() float64 { return float64(c) }
