// Package gesture synthesizes press-and-hold signals from keyboard input.
// Terminals report key presses only, never releases, so a "hold" has to be
// inferred from the OS key auto-repeat: a second press of the same key inside
// the quiet window promotes the press to a hold, and a quiet window with no
// further presses ends it. The detector emits begin/end exactly once per
// inferred hold, which is the contract a Stepper's HoldBegin/HoldEnd expects.
package gesture

import "time"

// DefaultQuietWindow is how long input may go silent before a hold ends.
// Generous enough to ride across OS auto-repeat gaps at common settings.
const DefaultQuietWindow = 300 * time.Millisecond

// Detector infers hold gestures for a set of opaque press targets. It is
// single-goroutine, meant to live on the host's event loop: feed it Press
// for every key event and Tick from a periodic timer.
type Detector struct {
	quiet time.Duration
	now   func() time.Time

	onBegin func(target any)
	onEnd   func()

	target  any
	last    time.Time
	holding bool
}

// New creates a Detector with the given quiet window. onBegin fires when a
// press is promoted to a hold; onEnd fires when the hold is over. A
// non-positive quiet window falls back to DefaultQuietWindow.
func New(quiet time.Duration, onBegin func(target any), onEnd func()) *Detector {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Detector{
		quiet:   quiet,
		now:     time.Now,
		onBegin: onBegin,
		onEnd:   onEnd,
	}
}

// SetNow injects a clock for deterministic tests.
func (d *Detector) SetNow(now func() time.Time) { d.now = now }

// Holding reports whether a hold is currently active.
func (d *Detector) Holding() bool { return d.holding }

// Target returns the target of the active or candidate press, nil when idle.
func (d *Detector) Target() any {
	return d.target
}

// Press records a key press attributed to target. It returns true when the
// press is part of a hold (either the promoting press or a sustaining
// repeat); the caller should then leave stepping to the hold machinery and
// not apply a discrete step of its own.
func (d *Detector) Press(target any) bool {
	now := d.now()

	// Switching keys ends any hold in progress and starts a new candidate.
	if d.target != target {
		d.end()
		d.target = target
		d.last = now
		return false
	}

	within := now.Sub(d.last) <= d.quiet
	d.last = now

	if !within {
		// Stale candidate: treat as a fresh first press.
		d.end()
		return false
	}

	if !d.holding {
		d.holding = true
		if d.onBegin != nil {
			d.onBegin(target)
		}
	}
	return true
}

// Tick checks the quiet window; the host calls it from a periodic timer. When
// input has gone silent the hold (or stale candidate) is cleared.
func (d *Detector) Tick() {
	if d.target == nil {
		return
	}
	if d.now().Sub(d.last) > d.quiet {
		d.end()
		d.target = nil
	}
}

// Cancel force-ends the current hold and candidate, for focus loss and
// similar host-side interruptions.
func (d *Detector) Cancel() {
	d.end()
	d.target = nil
}

func (d *Detector) end() {
	if !d.holding {
		return
	}
	d.holding = false
	if d.onEnd != nil {
		d.onEnd()
	}
}
