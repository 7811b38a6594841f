package schedule

import (
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type task struct {
	owner any
	due   time.Time
	seq   uint64
	fn    func()
}

// Looper is a frame-pumped task queue.
//
// Tasks are ordered by due time, then by post order. Posting is safe from any
// goroutine; tasks only run inside RunDue.
type Looper struct {
	mu    sync.Mutex
	clock clockwork.Clock
	tasks []task
	seq   uint64
}

// NewLooper creates a looper reading time from clock.
func NewLooper(clock clockwork.Clock) *Looper {
	return &Looper{clock: clock}
}

// PostDelayed queues fn to run once d has elapsed. Negative delays run on the
// next pump.
func (l *Looper) PostDelayed(owner any, d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	t := task{owner: owner, due: l.clock.Now().Add(d), seq: l.seq, fn: fn}

	i := sort.Search(len(l.tasks), func(i int) bool {
		return l.tasks[i].due.After(t.due)
	})
	l.tasks = append(l.tasks, task{})
	copy(l.tasks[i+1:], l.tasks[i:])
	l.tasks[i] = t
}

// RemoveAll drops every pending task posted by owner.
func (l *Looper) RemoveAll(owner any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.owner != owner {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = task{}
	}
	l.tasks = kept
}

// RunDue runs every task whose due time has been reached, including tasks
// posted by those tasks that are already due. It returns the number of tasks
// run.
func (l *Looper) RunDue() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.tasks) == 0 || l.tasks[0].due.After(l.clock.Now()) {
			l.mu.Unlock()
			return n
		}
		t := l.tasks[0]
		l.tasks[0] = task{}
		l.tasks = l.tasks[1:]
		l.mu.Unlock()

		t.fn()
		n++
	}
}

// NextDue returns the due time of the earliest pending task.
func (l *Looper) NextDue() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.tasks) == 0 {
		return time.Time{}, false
	}
	return l.tasks[0].due, true
}

// Pending returns the number of queued tasks
func (l *Looper) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}
