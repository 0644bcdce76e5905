package stepper

import (
	"sync"
	"time"
)

// RepeatTimer is a handle to a running repeat schedule. Stop is idempotent
// and may be called from within the scheduled callback itself.
type RepeatTimer interface {
	Stop()
}

// Scheduler starts repeating callbacks. The stepper asks its scheduler for at
// most one timer at a time; any environment's interval primitive can back it.
type Scheduler interface {
	Repeat(interval time.Duration, fn func()) RepeatTimer
}

// HoldBegin translates a long-press-began signal on an actuator into a repeat
// schedule stepping that actuator's operation every AutoRepeatInterval.
//
// The start is idempotent: while a repeat is active (only one may exist at a
// time) further hold-begin signals are no-ops, including signals for the
// other actuator. Signals are ignored entirely when auto-repeat is off, and
// signals for an unrecognized actuator identity are ignored as host wiring
// noise.
func (s *Stepper) HoldBegin(actuator any) {
	if !s.autoRepeat || s.repeat != nil {
		return
	}

	var step func()
	switch actuator {
	case s.incActuator:
		step = s.Increment
	case s.decActuator:
		step = s.Decrement
	default:
		return
	}

	s.repeat = s.sched.Repeat(s.autoRepeatInterval, step)
	s.feed.publish(EventHoldBegan, s.value, s.value)
}

// HoldEnd ends the active hold, if any, stopping the repeat schedule. The
// host should call it on end, cancel, and fail transitions alike.
func (s *Stepper) HoldEnd() {
	s.stopRepeat()
}

// SetScheduler replaces the timing facility used for auto-repeat. It panics
// if a repeat is currently active: the active timer belongs to the old
// scheduler and swapping under it would orphan it.
func (s *Stepper) SetScheduler(sched Scheduler) {
	if s.repeat != nil {
		panic("stepper: cannot replace scheduler while a repeat is active")
	}
	s.sched = sched
}

// stopRepeat invalidates and nulls out the active timer so a subsequent
// hold-begin always starts fresh. Called from HoldEnd, Close, and the clamp
// branch of a step operation (holding against a non-wrapping bound must not
// spin forever).
func (s *Stepper) stopRepeat() {
	if s.repeat == nil {
		return
	}
	s.repeat.Stop()
	s.repeat = nil
	s.feed.publish(EventHoldEnded, s.value, s.value)
}

// tickerScheduler is the default wall-clock scheduler. Callbacks fire on a
// dedicated goroutine; hosts with an event loop should forward them into it.
type tickerScheduler struct{}

func (tickerScheduler) Repeat(interval time.Duration, fn func()) RepeatTimer {
	t := &tickerTimer{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				fn()
			}
		}
	}()

	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// ManualScheduler is a deterministic Scheduler for tests and simulated time.
// Advance moves the virtual clock forward, firing due callbacks synchronously
// and in timestamp order. It is not safe for concurrent use; it lives on the
// same goroutine as the stepper it drives.
type ManualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

// NewManualScheduler creates a ManualScheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Repeat schedules fn every interval of virtual time, first firing one
// interval after the current virtual now.
func (m *ManualScheduler) Repeat(interval time.Duration, fn func()) RepeatTimer {
	t := &manualTimer{
		interval: interval,
		next:     m.now + interval,
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the virtual clock forward by d, synchronously firing every
// callback that comes due. A callback may stop its own timer (the stepper's
// clamp path does exactly that); the stopped timer fires no further.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d

	for {
		next := m.earliest()
		if next == nil || next.next > target {
			break
		}
		m.now = next.next
		next.next += next.interval
		next.fn()
	}

	m.now = target
}

// Now returns the current virtual time, measured from construction.
func (m *ManualScheduler) Now() time.Duration { return m.now }

func (m *ManualScheduler) earliest() *manualTimer {
	var next *manualTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		if next == nil || t.next < next.next {
			next = t
		}
	}
	return next
}

type manualTimer struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

func (t *manualTimer) Stop() { t.stopped = true }
