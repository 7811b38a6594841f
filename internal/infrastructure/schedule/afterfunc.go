package schedule

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type pending struct {
	timer clockwork.Timer
}

// AfterFunc schedules each task on its own clock timer. Tasks run on the
// timer's goroutine.
type AfterFunc struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	timers map[any]map[*pending]struct{}
}

// NewAfterFunc creates an AfterFunc scheduler.
func NewAfterFunc(clock clockwork.Clock) *AfterFunc {
	return &AfterFunc{
		clock:  clock,
		timers: make(map[any]map[*pending]struct{}),
	}
}

// PostDelayed arms a timer that runs fn after d.
func (a *AfterFunc) PostDelayed(owner any, d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	p := &pending{}
	set, ok := a.timers[owner]
	if !ok {
		set = make(map[*pending]struct{})
		a.timers[owner] = set
	}
	set[p] = struct{}{}

	// The callback blocks on mu until this method returns, so p.timer is set
	// before it is read.
	p.timer = a.clock.AfterFunc(d, func() {
		if !a.forget(owner, p) {
			return
		}
		fn()
	})
}

// forget removes p from the owner's set and reports whether it was still
// pending.
func (a *AfterFunc) forget(owner any, p *pending) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	set, ok := a.timers[owner]
	if !ok {
		return false
	}
	if _, ok := set[p]; !ok {
		return false
	}
	delete(set, p)
	if len(set) == 0 {
		delete(a.timers, owner)
	}
	return true
}

// RemoveAll stops every timer the owner still has armed.
func (a *AfterFunc) RemoveAll(owner any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for p := range a.timers[owner] {
		p.timer.Stop()
	}
	delete(a.timers, owner)
}

// Pending returns the number of armed timers
func (a *AfterFunc) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, set := range a.timers {
		n += len(set)
	}
	return n
}
