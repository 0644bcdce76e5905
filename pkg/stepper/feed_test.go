package stepper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_PublishesValueChanges(t *testing.T) {
	s := New("down", "up")
	sub := s.Events().Subscribe(8)
	defer s.Events().Unsubscribe(sub)

	s.Increment()

	got := drain(t, sub, 2)
	require.Len(t, got, 2)
	assert.Equal(t, EventIncremented, got[0].Kind)
	assert.Equal(t, EventValueChanged, got[1].Kind)
	assert.Equal(t, 0.0, got[1].Old)
	assert.Equal(t, 1.0, got[1].New)
}

func TestFeed_ClampEvent(t *testing.T) {
	s := New("down", "up")
	s.SetMaximum(1)
	s.SetValue(1)

	sub := s.Events().Subscribe(8)
	defer s.Events().Unsubscribe(sub)

	s.Increment()

	got := drain(t, sub, 1)
	assert.Equal(t, EventMaxClamped, got[0].Kind)
	assert.Equal(t, 1.0, got[0].New)

	// Clamps publish no value-changed event.
	select {
	case e := <-sub.C:
		t.Fatalf("unexpected extra event %q", e.Kind)
	default:
	}
}

func TestFeed_HoldLifecycleEvents(t *testing.T) {
	s := New("down", "up")
	sched := NewManualScheduler()
	s.SetScheduler(sched)

	sub := s.Events().Subscribe(32)
	defer s.Events().Unsubscribe(sub)

	s.HoldBegin("up")
	sched.Advance(100 * time.Millisecond)
	s.HoldEnd()

	got := drain(t, sub, 4)
	kinds := make([]EventKind, len(got))
	for i, e := range got {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []EventKind{EventHoldBegan, EventIncremented, EventValueChanged, EventHoldEnded}, kinds)
}

func TestFeed_FanOut(t *testing.T) {
	s := New("down", "up")
	sub1 := s.Events().Subscribe(4)
	sub2 := s.Events().Subscribe(4)
	defer s.Events().Unsubscribe(sub1)
	defer s.Events().Unsubscribe(sub2)

	s.Increment()

	assert.Len(t, drain(t, sub1, 2), 2)
	assert.Len(t, drain(t, sub2, 2), 2)
}

func TestFeed_NonBlockingDrop(t *testing.T) {
	s := New("down", "up")
	sub := s.Events().Subscribe(1)
	defer s.Events().Unsubscribe(sub)

	// Each Increment publishes two events into a buffer of one; the second
	// is dropped rather than blocking the control.
	s.Increment()

	got := <-sub.C
	assert.Equal(t, EventIncremented, got.Kind)

	select {
	case <-sub.C:
		t.Fatal("expected channel to be empty after drop")
	default:
	}
}

func TestFeed_Unsubscribe(t *testing.T) {
	s := New("down", "up")
	sub := s.Events().Subscribe(4)

	s.Events().Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open, "channel must be closed after unsubscribe")

	// Unsubscribing twice is harmless, and publishing after is too.
	s.Events().Unsubscribe(sub)
	s.Increment()
}

// drain reads n events from sub with a timeout guard.
func drain(t *testing.T, sub *Subscription, n int) []Event {
	t.Helper()

	out := make([]Event, 0, n)
	for len(out) < n {
		select {
		case e := <-sub.C:
			out = append(out, e)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}
