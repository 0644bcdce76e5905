package stepper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the dispatch sequence across all notification mechanisms.
type recorder struct {
	seq []string
}

func (r *recorder) Incremented(*Stepper) { r.seq = append(r.seq, "listener:incremented") }
func (r *recorder) Decremented(*Stepper) { r.seq = append(r.seq, "listener:decremented") }
func (r *recorder) MaxClamped(*Stepper)  { r.seq = append(r.seq, "listener:max_clamped") }
func (r *recorder) MinClamped(*Stepper)  { r.seq = append(r.seq, "listener:min_clamped") }

func (r *recorder) wire(s *Stepper) {
	s.Listener = r
	s.OnIncremented = func(*Stepper) { r.seq = append(r.seq, "slot:incremented") }
	s.OnDecremented = func(*Stepper) { r.seq = append(r.seq, "slot:decremented") }
	s.OnMaxClamped = func(*Stepper) { r.seq = append(r.seq, "slot:max_clamped") }
	s.OnMinClamped = func(*Stepper) { r.seq = append(r.seq, "slot:min_clamped") }
	s.OnChange = func(*Stepper, float64, float64) { r.seq = append(r.seq, "change") }
}

func TestStepper_Defaults(t *testing.T) {
	s := New("down", "up")

	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, 0.0, s.Minimum())
	assert.Equal(t, 100.0, s.Maximum())
	assert.Equal(t, 1.0, s.IncrementStep())
	assert.Equal(t, 1.0, s.DecrementStep())
	assert.False(t, s.Wraps())
	assert.True(t, s.AutoRepeat())
	assert.Equal(t, DefaultAutoRepeatInterval, s.AutoRepeatInterval())
}

func TestStepper_IncrementThenClampAtMaximum(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(10)
	s.SetValue(9)

	rec := &recorder{}
	rec.wire(s)

	// First call reaches the bound and notifies normally.
	s.Increment()
	require.Equal(t, 10.0, s.Value())
	assert.Equal(t, []string{"listener:incremented", "slot:incremented", "change"}, rec.seq)

	// Second call clamps: value untouched, no change notification.
	rec.seq = nil
	s.Increment()
	assert.Equal(t, 10.0, s.Value())
	assert.Equal(t, []string{"listener:max_clamped", "slot:max_clamped"}, rec.seq)
}

func TestStepper_DecrementClampAtMinimum(t *testing.T) {
	s := New("down", "up")

	rec := &recorder{}
	rec.wire(s)

	s.Decrement()
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, []string{"listener:min_clamped", "slot:min_clamped"}, rec.seq)
}

func TestStepper_WrapFiresDecrementedAcrossBoundary(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(10)
	s.SetWraps(true)
	s.SetValue(10)

	rec := &recorder{}
	rec.wire(s)

	// Wrapping from 10 to 0 lowers the value, so the directional check
	// classifies it as a decrement even though Increment caused it.
	s.Increment()
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, []string{"listener:decremented", "slot:decremented", "change"}, rec.seq)
}

func TestStepper_WrapAtMinimum(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(10)
	s.SetWraps(true)

	s.Decrement()
	assert.Equal(t, 10.0, s.Value())
}

func TestStepper_WrapReachesMinimumExactly(t *testing.T) {
	// (max-min) is a multiple of the step, so exceeding max lands exactly
	// on min, never on an intermediate value.
	s := New("down", "up")
	s.SetMaximum(10)
	s.SetWraps(true)

	for i := 0; i < 10; i++ {
		s.Increment()
	}
	require.Equal(t, 10.0, s.Value())

	s.Increment()
	assert.Equal(t, 0.0, s.Value())
}

func TestStepper_RoundTrip(t *testing.T) {
	s := New("down", "up")
	s.SetValue(50)

	s.Decrement()
	s.Increment()

	assert.Equal(t, 50.0, s.Value())
}

func TestStepper_RepeatedIncrementNeverExceedsMaximum(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(10)
	s.SetIncrementStep(3)

	for i := 0; i < 20; i++ {
		s.Increment()
		assert.LessOrEqual(t, s.Value(), 10.0)
	}
	// 3 steps reach 9; 9+3 overflows and clamps there.
	assert.Equal(t, 9.0, s.Value())
}

func TestStepper_SetValueSettlesOutOfRange(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(10)

	changes := 0
	s.OnChange = func(_ *Stepper, old, settled float64) {
		changes++
		assert.Equal(t, 0.0, old)
		assert.Equal(t, 10.0, settled)
	}

	s.SetValue(42)

	assert.Equal(t, 10.0, s.Value())
	assert.Equal(t, 1, changes, "settling must fire exactly one change notification")
}

func TestStepper_SetValueBelowRangeSettlesToMinimum(t *testing.T) {
	s := New("down", "up")
	s.SetMinimum(-5)

	s.SetValue(-100)
	assert.Equal(t, -5.0, s.Value())
}

func TestStepper_EqualAssignmentClassifiedAsDecrement(t *testing.T) {
	s := New("down", "up")
	s.SetValue(5)

	rec := &recorder{}
	rec.wire(s)

	// The directional check uses strict >, so a non-increasing assignment
	// (including re-assigning the current value) counts as a decrement.
	s.SetValue(5)
	assert.Equal(t, []string{"listener:decremented", "slot:decremented", "change"}, rec.seq)
}

func TestStepper_SetMinimumPanicsAtOrAboveMaximum(t *testing.T) {
	s := New("down", "up")

	assert.PanicsWithValue(t, "stepper: minimum 100 must be less than maximum 100", func() {
		s.SetMinimum(100)
	})
	assert.Panics(t, func() { s.SetMinimum(200) })
}

func TestStepper_SetMaximumPanicsAtOrBelowMinimum(t *testing.T) {
	s := New("down", "up")

	assert.Panics(t, func() { s.SetMaximum(0) })
	assert.Panics(t, func() { s.SetMaximum(-3) })
}

func TestStepper_InvalidBoundsFailFastBeforeUse(t *testing.T) {
	// A deck configured as [5, 3] must abort during configuration, not be
	// silently swapped or clamped.
	s := New("down", "up")
	s.SetMinimum(-10)
	s.SetMaximum(5)
	assert.Panics(t, func() { s.SetMinimum(5) })
}

func TestStepper_SetStepPanicsOnNonPositive(t *testing.T) {
	s := New("down", "up")

	assert.Panics(t, func() { s.SetIncrementStep(0) })
	assert.Panics(t, func() { s.SetIncrementStep(-1) })
	assert.Panics(t, func() { s.SetDecrementStep(0) })
	assert.Panics(t, func() { s.SetDecrementStep(-1) })
}

func TestStepper_SetMinimumResettlesValue(t *testing.T) {
	s := New("down", "up")
	s.SetValue(2)

	changes := 0
	s.OnChange = func(*Stepper, float64, float64) { changes++ }

	s.SetMinimum(5)

	assert.Equal(t, 5.0, s.Value())
	assert.Equal(t, 1, changes)
}

func TestStepper_SetMaximumResettlesValue(t *testing.T) {
	s := New("down", "up")
	s.SetValue(80)

	s.SetMaximum(50)
	assert.Equal(t, 50.0, s.Value())
}

func TestStepper_AutoRepeatIntervalSelfHeals(t *testing.T) {
	s := New("down", "up")
	s.SetAutoRepeatInterval(250 * time.Millisecond)
	require.Equal(t, 250*time.Millisecond, s.AutoRepeatInterval())
	require.True(t, s.AutoRepeat())

	// Non-positive interval resets to the default and disables auto-repeat
	// instead of panicking, the one self-correcting configuration path.
	s.SetAutoRepeatInterval(0)
	assert.Equal(t, DefaultAutoRepeatInterval, s.AutoRepeatInterval())
	assert.False(t, s.AutoRepeat())

	s.SetAutoRepeat(true)
	s.SetAutoRepeatInterval(-time.Second)
	assert.Equal(t, DefaultAutoRepeatInterval, s.AutoRepeatInterval())
	assert.False(t, s.AutoRepeat())
}

// clampCounter implements only the clamp hooks by embedding NopListener.
type clampCounter struct {
	NopListener
	maxHits int
}

func (c *clampCounter) MaxClamped(*Stepper) { c.maxHits++ }

func TestStepper_PartialListener(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(1)

	l := &clampCounter{}
	s.Listener = l

	s.Increment() // 0 -> 1, handled by the embedded no-ops
	s.Increment() // clamped
	s.Increment() // clamped again

	assert.Equal(t, 2, l.maxHits)
	assert.Equal(t, 1.0, s.Value())
}

func TestStepper_NoCallbacksConfigured(t *testing.T) {
	// A stepper with no listener and no slots must still mutate safely.
	s := New("down", "up")

	s.Increment()
	s.Decrement()
	s.SetValue(7)

	assert.Equal(t, 7.0, s.Value())
}
