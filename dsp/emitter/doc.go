// Package emitter schedules discrete trigger events from streams of
// inter-event durations.
//
// An [Emitter] yields the time until the next event each time it is pulled.
// [Periodic] yields a constant (use [NewPeriodic] to reject periods <= 0), [Random] draws uniformly from a seeded PRNG,
// and [Limit] passes through the first n durations of another emitter and
// then yields +Inf forever. A [Trigger] turns an emitter into boolean pulses
// at elapsed times:
//
//	em, _ := emitter.NewRandom(1, 0.001, 0.01)
//	trig := emitter.NewTrigger(emitter.Limit(200, em))
//	for i := range samples {
//		t := clock.Next()
//		for trig.Tick(t) {
//			// start a grain
//		}
//	}
//
// Tick fires at most once per call. Looping on it, as above, drains every
// event that has come due by t.
package emitter
