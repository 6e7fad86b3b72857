package osc

// Oscillator is a fixed-frequency generator combining a Phase with a Waveform.
type Oscillator struct {
	phase *Phase
	wave  Waveform
	freq  float64
	gain  float64
}

// NewOscillator returns an oscillator at freq Hz with unit gain.
func NewOscillator(sampleRate, freq float64, wave Waveform) (*Oscillator, error) {
	ph, err := NewPhase(sampleRate)
	if err != nil {
		return nil, err
	}
	if wave == nil {
		wave = Sin
	}
	return &Oscillator{phase: ph, wave: wave, freq: freq, gain: 1}, nil
}

// SetFrequency changes the frequency without resetting the phase.
func (o *Oscillator) SetFrequency(freq float64) { o.freq = freq }

// SetGain sets the output gain.
func (o *Oscillator) SetGain(gain float64) { o.gain = gain }

// Frequency returns the frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// Next returns the next sample.
func (o *Oscillator) Next() float64 {
	return o.wave(o.phase.Next(o.freq)) * o.gain
}

// Reset rewinds the phase.
func (o *Oscillator) Reset() { o.phase.Reset() }
