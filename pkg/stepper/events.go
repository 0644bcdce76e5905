package stepper

// Listener receives the four semantic stepper events. Implementations that
// only care about a subset should embed NopListener to pick up no-op defaults
// for the rest.
type Listener interface {
	// Incremented fires after a reassignment that raised the value.
	Incremented(s *Stepper)
	// Decremented fires after any non-increasing reassignment, including a
	// wrap from maximum to minimum and a direct set to the current value.
	Decremented(s *Stepper)
	// MaxClamped fires when a step past the maximum is rejected (wrapping
	// disabled). The value is unchanged and no change notification follows.
	MaxClamped(s *Stepper)
	// MinClamped is the mirror of MaxClamped at the minimum.
	MinClamped(s *Stepper)
}

// NopListener implements Listener with no-ops, for embedding.
type NopListener struct{}

func (NopListener) Incremented(*Stepper) {}
func (NopListener) Decremented(*Stepper) {}
func (NopListener) MaxClamped(*Stepper)  {}
func (NopListener) MinClamped(*Stepper)  {}
