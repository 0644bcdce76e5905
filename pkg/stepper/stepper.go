package stepper

import (
	"fmt"
	"time"
)

// DefaultAutoRepeatInterval is the delay between auto-repeat steps, and the
// value the interval self-heals to when a non-positive interval is assigned.
const DefaultAutoRepeatInterval = 100 * time.Millisecond

// Stepper is a bounded numeric control driven by two actuators. The zero
// value is not usable; construct with New.
//
// The exported callback slots (Listener, OnIncremented, ...) may be assigned
// freely between operations. For any single event the dispatch order is:
// the Listener hook, then the matching callback slot, then (for value
// reassignments only) OnChange. All of it runs synchronously before the
// triggering call returns.
type Stepper struct {
	decActuator any
	incActuator any

	value   float64
	min     float64
	max     float64
	incStep float64
	decStep float64
	wraps   bool

	autoRepeat         bool
	autoRepeatInterval time.Duration

	sched  Scheduler
	repeat RepeatTimer

	// Listener receives the four semantic hooks; embed NopListener to
	// implement only a subset.
	Listener Listener

	// Per-event callback slots. Each fires after the corresponding Listener
	// hook for the same event.
	OnIncremented func(*Stepper)
	OnDecremented func(*Stepper)
	OnMaxClamped  func(*Stepper)
	OnMinClamped  func(*Stepper)

	// OnChange fires once per value reassignment, after the directional
	// dispatch and after the value has settled into [minimum, maximum].
	OnChange func(s *Stepper, old, settled float64)

	feed *Feed
}

// New creates a Stepper bound to two opaque actuator identities. The
// identities are only compared (==) against the actuator argument of
// HoldBegin; the control does not otherwise interpret them.
//
// Defaults: value 0, bounds [0, 100], both step sizes 1, no wrapping,
// auto-repeat enabled at DefaultAutoRepeatInterval.
func New(decrement, increment any) *Stepper {
	return &Stepper{
		decActuator:        decrement,
		incActuator:        increment,
		min:                0,
		max:                100,
		incStep:            1,
		decStep:            1,
		autoRepeat:         true,
		autoRepeatInterval: DefaultAutoRepeatInterval,
		sched:              tickerScheduler{},
		feed:               newFeed(),
	}
}

// Value returns the current value.
func (s *Stepper) Value() float64 { return s.value }

// Minimum returns the lower bound.
func (s *Stepper) Minimum() float64 { return s.min }

// Maximum returns the upper bound.
func (s *Stepper) Maximum() float64 { return s.max }

// IncrementStep returns the delta applied by Increment.
func (s *Stepper) IncrementStep() float64 { return s.incStep }

// DecrementStep returns the delta applied by Decrement.
func (s *Stepper) DecrementStep() float64 { return s.decStep }

// Wraps reports whether overflow past a bound wraps to the opposite bound.
func (s *Stepper) Wraps() bool { return s.wraps }

// AutoRepeat reports whether hold gestures start a repeat timer.
func (s *Stepper) AutoRepeat() bool { return s.autoRepeat }

// AutoRepeatInterval returns the delay between auto-repeat steps.
func (s *Stepper) AutoRepeatInterval() time.Duration { return s.autoRepeatInterval }

// Events returns the control's event feed for channel-based observation.
func (s *Stepper) Events() *Feed { return s.feed }

// Increment advances the value by the increment step. Overflow past the
// maximum wraps to the minimum when wrapping is enabled; otherwise the value
// is left untouched, any active repeat is stopped, and only the max-clamped
// event fires.
func (s *Stepper) Increment() {
	candidate := s.value + s.incStep
	switch {
	case s.wraps && candidate > s.max:
		s.assign(s.min)
	case candidate <= s.max:
		s.assign(candidate)
	default:
		s.stopRepeat()
		s.notifyMaxClamped()
	}
}

// Decrement is the mirror of Increment: underflow past the minimum wraps to
// the maximum, or clamps and fires the min-clamped event.
func (s *Stepper) Decrement() {
	candidate := s.value - s.decStep
	switch {
	case s.wraps && candidate < s.min:
		s.assign(s.max)
	case candidate >= s.min:
		s.assign(candidate)
	default:
		s.stopRepeat()
		s.notifyMinClamped()
	}
}

// SetValue assigns the value directly. The assignment settles into
// [minimum, maximum] and fires exactly one value-changed notification.
// Direction is classified with a strict comparison: any non-increasing
// assignment, including assigning the current value, fires "decremented".
func (s *Stepper) SetValue(v float64) {
	s.assign(v)
}

// SetMinimum changes the lower bound. It panics if v is not strictly below
// the current maximum: configuration is never silently coerced. If the
// current value falls below the new bound it is settled (with notifications).
func (s *Stepper) SetMinimum(v float64) {
	if v >= s.max {
		panic(fmt.Sprintf("stepper: minimum %v must be less than maximum %v", v, s.max))
	}
	s.min = v
	if s.value < v {
		s.assign(v)
	}
}

// SetMaximum changes the upper bound. It panics if v is not strictly above
// the current minimum. If the current value exceeds the new bound it is
// settled (with notifications).
func (s *Stepper) SetMaximum(v float64) {
	if v <= s.min {
		panic(fmt.Sprintf("stepper: maximum %v must be greater than minimum %v", v, s.min))
	}
	s.max = v
	if s.value > v {
		s.assign(v)
	}
}

// SetIncrementStep changes the increment delta. It panics if v is not
// strictly positive.
func (s *Stepper) SetIncrementStep(v float64) {
	if v <= 0 {
		panic(fmt.Sprintf("stepper: increment step %v must be positive", v))
	}
	s.incStep = v
}

// SetDecrementStep changes the decrement delta. It panics if v is not
// strictly positive.
func (s *Stepper) SetDecrementStep(v float64) {
	if v <= 0 {
		panic(fmt.Sprintf("stepper: decrement step %v must be positive", v))
	}
	s.decStep = v
}

// SetWraps toggles wrap-around at the bounds.
func (s *Stepper) SetWraps(wraps bool) { s.wraps = wraps }

// SetAutoRepeat toggles auto-repeat. Disabling it does not stop a repeat that
// is already running; the current hold keeps stepping until it ends, but
// the next hold-begin is ignored.
func (s *Stepper) SetAutoRepeat(enabled bool) { s.autoRepeat = enabled }

// SetAutoRepeatInterval changes the delay between auto-repeat steps. A
// non-positive interval is the one self-healing configuration path: the
// interval resets to DefaultAutoRepeatInterval and auto-repeat is forced off.
// An already-running repeat keeps its old cadence until the hold ends.
func (s *Stepper) SetAutoRepeatInterval(d time.Duration) {
	if d <= 0 {
		s.autoRepeatInterval = DefaultAutoRepeatInterval
		s.autoRepeat = false
		return
	}
	s.autoRepeatInterval = d
}

// Close stops any active repeat timer. The control must not be used after a
// hold is in flight at teardown without calling Close; it is safe to call
// Close multiple times.
func (s *Stepper) Close() {
	s.stopRepeat()
}

// assign is the single apply-and-settle path for every value reassignment:
// classify direction against the old value, settle the new value into
// [minimum, maximum], then fire the generic change notification once.
func (s *Stepper) assign(v float64) {
	old := s.value
	s.value = v

	if v > old {
		s.notifyIncremented(old)
	} else {
		s.notifyDecremented(old)
	}

	// Settle: a direct external assignment may land outside the bounds.
	if s.value > s.max {
		s.value = s.max
	} else if s.value < s.min {
		s.value = s.min
	}

	if s.OnChange != nil {
		s.OnChange(s, old, s.value)
	}
	s.feed.publish(EventValueChanged, old, s.value)
}

func (s *Stepper) notifyIncremented(old float64) {
	if s.Listener != nil {
		s.Listener.Incremented(s)
	}
	if s.OnIncremented != nil {
		s.OnIncremented(s)
	}
	s.feed.publish(EventIncremented, old, s.value)
}

func (s *Stepper) notifyDecremented(old float64) {
	if s.Listener != nil {
		s.Listener.Decremented(s)
	}
	if s.OnDecremented != nil {
		s.OnDecremented(s)
	}
	s.feed.publish(EventDecremented, old, s.value)
}

func (s *Stepper) notifyMaxClamped() {
	if s.Listener != nil {
		s.Listener.MaxClamped(s)
	}
	if s.OnMaxClamped != nil {
		s.OnMaxClamped(s)
	}
	s.feed.publish(EventMaxClamped, s.value, s.value)
}

func (s *Stepper) notifyMinClamped() {
	if s.Listener != nil {
		s.Listener.MinClamped(s)
	}
	if s.OnMinClamped != nil {
		s.OnMinClamped(s)
	}
	s.feed.publish(EventMinClamped, s.value, s.value)
}
