package envelope

// Envelope maps elapsed seconds to a gain multiplier.
type Envelope interface {
	Get(t float64) float64
	Duration() float64
}

var (
	_ Envelope = (*Exponential)(nil)
	_ Envelope = (*Path)(nil)
)
