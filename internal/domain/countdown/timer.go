// Package countdown provides a pausable interval countdown.
package countdown

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

// Observer receives countdown callbacks.
type Observer interface {
	// OnTick is called once per interval with the time left.
	OnTick(remaining time.Duration)
	// OnFinish is called once the deadline has passed.
	OnFinish()
}

// Timer counts down from a fixed duration, calling OnTick every interval and
// OnFinish at the end. It can be paused, resumed, restarted and cancelled
// from any goroutine.
//
// Callbacks run with the timer unlocked, so an observer may restart or
// cancel the timer from inside OnTick or OnFinish.
type Timer struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	sched     schedule.Scheduler
	observer  Observer
	duration  time.Duration
	interval  time.Duration
	deadline  time.Time
	remaining time.Duration
	running   bool
	paused    bool
	cancelled bool

	// gen changes on every start, pause, resume and cancel. An evaluation
	// carries the generation that scheduled it and does nothing once stale.
	gen uint64
}

// MinInterval is the shortest tick interval a Timer accepts.
const MinInterval = time.Millisecond

// New creates a stopped timer. Intervals below MinInterval are raised to it.
func New(duration, interval time.Duration, clock clockwork.Clock, sched schedule.Scheduler, observer Observer) *Timer {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Timer{
		clock:    clock,
		sched:    sched,
		observer: observer,
		duration: duration,
		interval: interval,
	}
}

// Start (re)starts the countdown from the full duration. A non-positive
// duration finishes immediately without scheduling anything.
func (t *Timer) Start() {
	t.mu.Lock()
	t.sched.RemoveAll(t)
	t.gen++

	if t.duration <= 0 {
		t.running = false
		t.mu.Unlock()
		t.observer.OnFinish()
		return
	}

	t.deadline = t.clock.Now().Add(t.duration)
	t.remaining = t.duration
	t.running = true
	t.cancelled = false
	t.paused = false
	t.post(t.gen, 0)
	t.mu.Unlock()
}

// Pause freezes the countdown and returns the time left.
func (t *Timer) Pause() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.paused || t.cancelled {
		return t.remaining
	}

	t.remaining = t.deadline.Sub(t.clock.Now())
	if t.remaining < 0 {
		t.remaining = 0
	}
	t.paused = true
	t.gen++
	t.sched.RemoveAll(t)
	return t.remaining
}

// Resume continues a paused countdown and returns the time left.
func (t *Timer) Resume() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.paused || t.cancelled {
		return t.remaining
	}

	t.deadline = t.clock.Now().Add(t.remaining)
	t.paused = false
	t.gen++
	t.post(t.gen, 0)
	return t.remaining
}

// Cancel stops the countdown. No callback fires after Cancel returns, except
// one that was already running.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelled = true
	t.running = false
	t.gen++
	t.sched.RemoveAll(t)
}

// Running reports whether the countdown is started and not yet finished or
// cancelled. A paused timer is still running.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Paused reports whether the countdown is paused
func (t *Timer) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// post must be called with mu held.
func (t *Timer) post(gen uint64, d time.Duration) {
	t.sched.PostDelayed(t, d, func() { t.evaluate(gen) })
}

func (t *Timer) evaluate(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.paused || t.cancelled {
		t.mu.Unlock()
		return
	}

	left := t.deadline.Sub(t.clock.Now())
	if left <= 0 {
		t.running = false
		t.remaining = 0
		t.mu.Unlock()
		t.observer.OnFinish()
		return
	}
	if left < t.interval {
		// no tick, just wait out the last partial interval
		t.post(gen, left)
		t.mu.Unlock()
		return
	}

	tickStart := t.clock.Now()
	t.mu.Unlock()

	t.observer.OnTick(left)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen || t.cancelled {
		return
	}

	delay := tickStart.Add(t.interval).Sub(t.clock.Now())
	// OnTick overran one or more intervals: skip to the next boundary
	for delay < 0 {
		delay += t.interval
	}
	t.post(gen, delay)
}
