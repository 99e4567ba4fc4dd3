// Package sched provides the single-threaded execution model shared by the
// playback components. Every callback handed to a Scheduler runs on one logical
// thread, one at a time, in the order it became runnable.
package sched

import "time"

// Scheduler serializes callbacks onto a single logical thread.
type Scheduler interface {
	// Now returns the scheduler clock.
	Now() time.Time
	// Post queues fn to run on the scheduler thread. It never blocks.
	Post(fn func())
	// After runs fn on the scheduler thread once d has elapsed.
	After(d time.Duration, fn func()) Timer
	// Do runs fn on the scheduler thread and waits for it to return.
	// It must not be called from a callback already running on the thread.
	Do(fn func())
}

// Timer is a pending After callback.
type Timer interface {
	// Stop prevents the callback from being queued. It reports whether the
	// timer was still pending.
	Stop() bool
}
