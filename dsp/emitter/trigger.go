package emitter

// Trigger converts an emitter's durations into trigger pulses at absolute
// elapsed times.
//
// The first duration is pulled at construction, so the first event fires at
// the elapsed time equal to that duration. Tick fires at most once per call:
// if several events are due by t, the schedule advances by one duration per
// call.
type Trigger struct {
	emitter Emitter
	next    float64
	fired   uint64
}

// NewTrigger returns a trigger driven by e.
func NewTrigger(e Emitter) *Trigger {
	return &Trigger{emitter: e, next: e.Next()}
}

// Tick reports whether an event is due at elapsed time t. When it is, the
// schedule advances by the emitter's next duration.
func (tr *Trigger) Tick(t float64) bool {
	if t < tr.next {
		return false
	}
	tr.next += tr.emitter.Next()
	tr.fired++
	return true
}

// Next returns the elapsed time of the next scheduled event. It is +Inf once
// a limited emitter is exhausted.
func (tr *Trigger) Next() float64 { return tr.next }

// Fired returns the number of events fired so far.
func (tr *Trigger) Fired() uint64 { return tr.fired }
