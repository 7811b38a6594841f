// Package schedule provides deferred execution for timers and haptics.
//
// Two schedulers are available. Looper queues tasks and runs them when the
// game loop pumps it, so tasks execute on the same goroutine as the scenes.
// AfterFunc runs each task on its own clock timer, for headless play.
package schedule

import "time"

// Scheduler runs functions after a delay on behalf of an owner.
//
// Owners are compared with ==, so a pointer to the owning struct is the usual
// choice. RemoveAll drops every task the owner still has pending; a task that
// is already running is not interrupted.
type Scheduler interface {
	PostDelayed(owner any, d time.Duration, fn func())
	RemoveAll(owner any)
}
