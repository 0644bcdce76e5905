package stepper

import (
	"sync"
	"time"
)

// EventKind identifies the type of stepper event carried by the Feed.
type EventKind string

const (
	EventValueChanged EventKind = "value_changed"
	EventIncremented  EventKind = "incremented"
	EventDecremented  EventKind = "decremented"
	EventMaxClamped   EventKind = "max_clamped"
	EventMinClamped   EventKind = "min_clamped"
	EventHoldBegan    EventKind = "hold_began"
	EventHoldEnded    EventKind = "hold_ended"
)

// Event is an immutable notification of stepper activity. Old and New carry
// the value before and after the mutation; for clamp and hold events they are
// both the current value.
type Event struct {
	Kind      EventKind `json:"kind"`
	Old       float64   `json:"old"`
	New       float64   `json:"new"`
	Timestamp time.Time `json:"timestamp"`
}

// Subscription receives events from a Feed.
type Subscription struct {
	C  <-chan Event
	ch chan Event
}

// Feed fans stepper events out to all active subscribers. Unlike the
// synchronous Listener/callback path, feed delivery is buffered and lossy:
// it exists to bridge the control into a host event system, not to replace
// the callback contract. It is safe for concurrent use.
type Feed struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func newFeed() *Feed {
	return &Feed{subs: make(map[*Subscription]struct{})}
}

// Subscribe creates a new subscription with the given channel buffer size.
// The caller should read from sub.C and eventually call Unsubscribe.
func (f *Feed) Subscribe(bufSize int) *Subscription {
	ch := make(chan Event, bufSize)
	sub := &Subscription{C: ch, ch: ch}

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	return sub
}

// Unsubscribe removes the subscription and closes its channel.
func (f *Feed) Unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[sub]; ok {
		delete(f.subs, sub)
		close(sub.ch)
	}
}

// publish sends an event to all subscribers. If a subscriber's buffer is full
// the event is dropped for that subscriber so slow consumers cannot stall the
// control.
func (f *Feed) publish(kind EventKind, old, newVal float64) {
	e := Event{Kind: kind, Old: old, New: newVal, Timestamp: time.Now()}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for sub := range f.subs {
		select {
		case sub.ch <- e:
		default:
		}
	}
}
