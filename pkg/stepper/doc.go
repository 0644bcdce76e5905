// Package stepper implements a reusable bounded numeric stepper control: two
// actuator surfaces (decrement, increment) drive a value held within
// [minimum, maximum], with optional wrap-around at the bounds and
// press-and-hold auto-repeat. Hosts (TUI, web, anything with a gesture layer)
// construct a Stepper with two opaque actuator identities, forward
// hold-begin/hold-end signals to it, and observe mutations through a
// polymorphic Listener, per-event callback slots, or the channel-based Feed.
//
// The control follows a single-threaded cooperative model: all mutation and
// callback dispatch happen synchronously on whatever goroutine drives the
// host's event loop. The auto-repeat timer is the only asynchronous actor; the
// default wall-clock Scheduler fires on its own goroutine and the host is
// responsible for serializing those callbacks into its loop (or for injecting
// a scheduler of its own, such as ManualScheduler in tests).
package stepper
