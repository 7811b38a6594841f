// Package round drives a single game round: the shuffled word queue, the
// score, the countdown and the buzz cues the screens react to.
package round

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/application/observable"
	"github.com/younwookim/letsmime/internal/domain/countdown"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

const (
	// DefaultDuration is the time allowed per word
	DefaultDuration = 60 * time.Second
	// DefaultInterval is the tick interval
	DefaultInterval = time.Second
	// DefaultPanicSeconds is the remaining time from which every tick buzzes
	DefaultPanicSeconds = 10
)

// DefaultWords is the built-in word list.
var DefaultWords = []string{
	"Cheerleader",
	"Roller coaster",
	"Zodiac",
	"Hurricane",
	"Owl",
	"Joker",
	"Calendar",
	"Hospital",
	"Railway",
	"Voodoo",
	"Rhubarb",
	"Caterpillar",
	"Duplex",
	"Transplant",
}

// Settings configures a round.
type Settings struct {
	Duration     time.Duration
	Interval     time.Duration
	PanicSeconds int64
	Words        []string
	Seed         int64
}

// DefaultSettings returns the standard round with the given shuffle seed.
func DefaultSettings(seed int64) Settings {
	return Settings{
		Duration:     DefaultDuration,
		Interval:     DefaultInterval,
		PanicSeconds: DefaultPanicSeconds,
		Words:        DefaultWords,
		Seed:         seed,
	}
}

// Controller owns the state of one round. Screens observe it through the
// read-only observables and call the On* methods in response to input.
//
// A Controller starts its round on creation and stays finished once the
// word queue is exhausted; create a new one to play again.
//
// Every operation and timer callback changes the round under one mutex and
// queues its effects (published values, timer starts and stops). The queue
// is drained in order by one goroutine at a time, outside the mutex, so
// listeners may call back into the controller and observe the transitions
// in the order they happened.
type Controller struct {
	id       uuid.UUID
	settings Settings
	clock    clockwork.Clock
	sched    schedule.Scheduler

	mu       sync.Mutex
	queue    *WordQueue
	points   int
	over     bool
	paused   bool
	closed   bool
	timer    *countdown.Timer
	seq      uint64 // bumped for every word; ticks from older words are dropped
	effects  []func()
	draining bool

	word      *observable.Value[string]
	score     *observable.Value[int]
	remaining *observable.Value[time.Duration]
	buzz      *observable.Value[Buzz]
	finished  *observable.Value[bool]
	timeText  observable.Observable[string]
}

// NewController shuffles the words, shows the first one and starts the
// countdown.
func NewController(s Settings, clock clockwork.Clock, sched schedule.Scheduler) *Controller {
	c := &Controller{
		id:        uuid.New(),
		settings:  s,
		clock:     clock,
		sched:     sched,
		queue:     NewWordQueue(s.Words, rand.New(rand.NewSource(s.Seed))),
		word:      &observable.Value[string]{},
		score:     observable.NewValue(0),
		remaining: &observable.Value[time.Duration]{},
		buzz:      observable.NewValue(BuzzNone),
		finished:  observable.NewValue(false),
	}
	c.timeText = observable.Map[time.Duration, string](c.remaining, FormatElapsed)

	log.Info().
		Str("round_id", c.id.String()).
		Int("words", c.queue.Len()).
		Int64("seed", s.Seed).
		Dur("duration", s.Duration).
		Msg("round started")

	c.mu.Lock()
	c.next()
	c.mu.Unlock()
	c.drain()

	return c
}

// RoundID identifies the round in logs and recordings
func (c *Controller) RoundID() string {
	return c.id.String()
}

// Settings returns the settings the round was created with
func (c *Controller) Settings() Settings {
	return c.settings
}

// Word is the word to mime; empty once the queue is exhausted.
func (c *Controller) Word() observable.Observable[string] { return c.word }

// Score is the running score. It may go negative.
func (c *Controller) Score() observable.Observable[int] { return c.score }

// TimeRemaining is the time left on the current word, updated every tick.
func (c *Controller) TimeRemaining() observable.Observable[time.Duration] { return c.remaining }

// TimeText is TimeRemaining formatted for display.
func (c *Controller) TimeText() observable.Observable[string] { return c.timeText }

// Buzz is the pending haptic cue. Acknowledge it with OnBuzzComplete.
func (c *Controller) Buzz() observable.Observable[Buzz] { return c.buzz }

// Finished turns true when the round ends. Acknowledge it with
// OnGameFinishComplete.
func (c *Controller) Finished() observable.Observable[bool] { return c.finished }

// CurrentScore returns the score, including answers whose effects are still
// being published.
func (c *Controller) CurrentScore() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.points
}

// Over reports whether the word queue has been exhausted.
func (c *Controller) Over() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.over
}

// OnSkip costs a point and moves to the next word.
func (c *Controller) OnSkip() {
	c.answer(-1, BuzzNone)
}

// OnCorrect scores a point and moves to the next word.
func (c *Controller) OnCorrect() {
	c.answer(1, BuzzCorrect)
}

// OnPause freezes the countdown.
func (c *Controller) OnPause() {
	c.mu.Lock()
	if c.over || c.closed {
		c.mu.Unlock()
		return
	}
	c.paused = true
	t := c.timer
	c.emit(func() {
		left := t.Pause()
		log.Debug().Str("round_id", c.id.String()).Dur("remaining", left).Msg("round paused")
	})
	c.mu.Unlock()
	c.drain()
}

// OnResume continues the countdown.
func (c *Controller) OnResume() {
	c.mu.Lock()
	if c.over || c.closed {
		c.mu.Unlock()
		return
	}
	c.paused = false
	t := c.timer
	c.emit(func() {
		left := t.Resume()
		log.Debug().Str("round_id", c.id.String()).Dur("remaining", left).Msg("round resumed")
	})
	c.mu.Unlock()
	c.drain()
}

// Paused reports whether the countdown is paused
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// OnGameFinishComplete acknowledges the finished event.
func (c *Controller) OnGameFinishComplete() {
	c.publish(func() { c.finished.Set(false) })
}

// OnBuzzComplete acknowledges the buzz cue.
func (c *Controller) OnBuzzComplete() {
	c.publish(func() { c.buzz.Set(BuzzNone) })
}

// Close stops the countdown. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	t := c.timer
	c.emit(func() {
		if t != nil {
			t.Cancel()
		}
		log.Debug().Str("round_id", c.id.String()).Msg("round closed")
	})
	c.mu.Unlock()
	c.drain()
}

func (c *Controller) answer(delta int, cue Buzz) {
	c.mu.Lock()
	if c.over || c.closed {
		c.mu.Unlock()
		return
	}
	c.points += delta
	points := c.points
	c.emit(func() { c.score.Set(points) })
	if cue != BuzzNone {
		c.emit(func() { c.buzz.Set(cue) })
	}
	c.next()
	c.mu.Unlock()
	c.drain()
}

// next shows the following word on a fresh countdown, or ends the round
// when there is none. c.mu must be held.
func (c *Controller) next() {
	old := c.timer
	if old != nil {
		c.emit(old.Cancel)
	}
	c.seq++
	c.paused = false

	word, ok := c.queue.Pop()
	if !ok {
		c.over = true
		c.timer = nil
		points := c.points
		c.emit(func() {
			c.word.Set("")
			c.buzz.Set(BuzzGameOver)
			c.finished.Set(true)
			log.Info().
				Str("round_id", c.id.String()).
				Int("score", points).
				Msg("round finished")
		})
		return
	}

	t := countdown.New(c.settings.Duration, c.settings.Interval, c.clock, c.sched, tickHandler{c: c, seq: c.seq})
	c.timer = t
	c.emit(func() {
		c.word.Set(word)
		c.buzz.Set(BuzzTimesUp)
	})
	c.emit(t.Start)
}

// emit queues an effect. c.mu must be held.
func (c *Controller) emit(fn func()) {
	c.effects = append(c.effects, fn)
}

// publish queues fn and drains the queue
func (c *Controller) publish(fn func()) {
	c.mu.Lock()
	c.emit(fn)
	c.mu.Unlock()
	c.drain()
}

// drain runs queued effects in order unless another call is already doing
// so, in which case that call picks up what was queued here.
func (c *Controller) drain() {
	c.mu.Lock()
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true
	for len(c.effects) > 0 {
		fn := c.effects[0]
		c.effects[0] = nil
		c.effects = c.effects[1:]
		c.mu.Unlock()
		fn()
		c.mu.Lock()
	}
	c.draining = false
	c.mu.Unlock()
}

// tickHandler adapts the controller to countdown.Observer for the countdown
// of one word.
type tickHandler struct {
	c   *Controller
	seq uint64
}

// current reports whether the handler's word is still on screen. c.mu must
// be held.
func (h tickHandler) current() bool {
	return h.seq == h.c.seq && !h.c.over && !h.c.closed
}

func (h tickHandler) OnTick(remaining time.Duration) {
	c := h.c
	c.mu.Lock()
	if !h.current() || c.paused {
		c.mu.Unlock()
		return
	}
	c.emit(func() { c.remaining.Set(remaining) })
	if int64(remaining/time.Second) <= c.settings.PanicSeconds {
		c.emit(func() { c.buzz.Set(BuzzPanic) })
	}
	c.mu.Unlock()
	c.drain()
}

// OnFinish treats an expired word as skipped.
func (h tickHandler) OnFinish() {
	c := h.c
	c.mu.Lock()
	current := h.current()
	c.mu.Unlock()
	if current {
		c.OnSkip()
	}
}
