package round

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

type fixture struct {
	clock  *clockwork.FakeClock
	looper *schedule.Looper
	ctrl   *Controller
	buzzes []Buzz
	words  []string
	finish int
}

func newFixture(t *testing.T, s Settings) *fixture {
	t.Helper()
	clock := clockwork.NewFakeClock()
	looper := schedule.NewLooper(clock)
	f := &fixture{clock: clock, looper: looper}
	f.ctrl = NewController(s, clock, looper)
	t.Cleanup(f.ctrl.Close)

	f.ctrl.Buzz().Subscribe(func(b Buzz) {
		if b != BuzzNone {
			f.buzzes = append(f.buzzes, b)
		}
	})
	f.ctrl.Word().Subscribe(func(w string) { f.words = append(f.words, w) })
	f.ctrl.Finished().Subscribe(func(done bool) {
		if done {
			f.finish++
		}
	})
	f.looper.RunDue()
	return f
}

// tick advances the clock one interval and runs what came due
func (f *fixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.clock.Advance(time.Second)
		f.looper.RunDue()
	}
}

func (f *fixture) remaining() time.Duration {
	r, _ := f.ctrl.TimeRemaining().Get()
	return r
}

func TestController_Initialization(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))

	assert.Equal(t, 0, f.ctrl.CurrentScore())
	require.Len(t, f.words, 1)
	assert.Contains(t, DefaultWords, f.words[0])
	assert.Equal(t, []Buzz{BuzzTimesUp}, f.buzzes, "word ready cue on start")
	assert.Equal(t, 0, f.finish)
	assert.False(t, f.ctrl.Over())
	assert.NotEmpty(t, f.ctrl.RoundID())

	// first tick is immediate
	assert.Equal(t, 60*time.Second, f.remaining())
	text, ok := f.ctrl.TimeText().Get()
	require.True(t, ok)
	assert.Equal(t, "01:00", text)
}

func TestController_ScoreIsCorrectMinusSkip(t *testing.T) {
	tests := []struct {
		name    string
		actions string
		want    int
	}{
		{"none", "", 0},
		{"all correct", "cccc", 4},
		{"all skip", "sss", -3},
		{"mixed", "csccsscc", 2},
		{"negative", "sscss", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, DefaultSettings(7))
			for _, a := range tt.actions {
				if a == 'c' {
					f.ctrl.OnCorrect()
				} else {
					f.ctrl.OnSkip()
				}
			}
			assert.Equal(t, tt.want, f.ctrl.CurrentScore())
			assert.False(t, f.ctrl.Over())
		})
	}
}

func TestController_CorrectEmitsCorrectThenReady(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	f.buzzes = nil

	f.ctrl.OnCorrect()

	assert.Equal(t, []Buzz{BuzzCorrect, BuzzTimesUp}, f.buzzes)
}

func TestController_SkipEmitsOnlyReady(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	f.buzzes = nil

	f.ctrl.OnSkip()

	assert.Equal(t, []Buzz{BuzzTimesUp}, f.buzzes)
}

func TestController_QueueExhaustion(t *testing.T) {
	f := newFixture(t, DefaultSettings(3))

	// the first word is already shown
	for i := 0; i < len(DefaultWords)-1; i++ {
		f.ctrl.OnSkip()
	}
	assert.Equal(t, 0, f.finish)
	assert.False(t, f.ctrl.Over())

	seen := map[string]bool{}
	for _, w := range f.words {
		assert.False(t, seen[w], "word %q repeated", w)
		seen[w] = true
	}
	assert.Len(t, seen, len(DefaultWords))

	f.ctrl.OnSkip()
	assert.Equal(t, 1, f.finish)
	assert.True(t, f.ctrl.Over())
	assert.Equal(t, BuzzGameOver, f.buzzes[len(f.buzzes)-1])
	assert.Equal(t, -len(DefaultWords), f.ctrl.CurrentScore())

	word, _ := f.ctrl.Word().Get()
	assert.Empty(t, word)

	done, _ := f.ctrl.Finished().Get()
	assert.True(t, done)
	f.ctrl.OnGameFinishComplete()
	done, _ = f.ctrl.Finished().Get()
	assert.False(t, done)

	// terminal: further input and time change nothing
	f.ctrl.OnSkip()
	f.ctrl.OnCorrect()
	f.tick(120)
	assert.Equal(t, 1, f.finish)
	assert.Equal(t, -len(DefaultWords), f.ctrl.CurrentScore())
	assert.Equal(t, 0, f.looper.Pending())
}

func TestController_BuzzAcknowledge(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))

	b, _ := f.ctrl.Buzz().Get()
	assert.Equal(t, BuzzTimesUp, b)

	f.ctrl.OnBuzzComplete()
	b, _ = f.ctrl.Buzz().Get()
	assert.Equal(t, BuzzNone, b)
}

func TestController_PanicBuzzOnEveryTickInWindow(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	f.buzzes = nil

	f.tick(49)
	assert.Equal(t, 11*time.Second, f.remaining())
	assert.Empty(t, f.buzzes, "no panic above threshold")

	f.tick(1)
	assert.Equal(t, 10*time.Second, f.remaining())
	assert.Equal(t, []Buzz{BuzzPanic}, f.buzzes, "first panic at 10s")

	f.tick(9)
	assert.Equal(t, time.Second, f.remaining())
	assert.Len(t, f.buzzes, 10, "panic repeats on every tick")
	for _, b := range f.buzzes {
		assert.Equal(t, BuzzPanic, b)
	}
}

func TestController_TimerExpiryActsAsSkip(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	first := f.words[0]

	f.tick(59)
	assert.Equal(t, 0, f.ctrl.CurrentScore())

	f.tick(1)
	assert.Equal(t, -1, f.ctrl.CurrentScore())
	require.Len(t, f.words, 2)
	assert.NotEqual(t, first, f.words[1])
	assert.Equal(t, 60*time.Second, f.remaining(), "timer restarted for the new word")
}

func TestController_CorrectRestartsTimer(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))

	f.tick(20)
	assert.Equal(t, 40*time.Second, f.remaining())

	f.ctrl.OnCorrect()
	f.looper.RunDue()
	assert.Equal(t, 60*time.Second, f.remaining())
	assert.Equal(t, 1, f.looper.Pending(), "one countdown chain")
}

func TestController_PauseResume(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	f.tick(5)

	f.ctrl.OnPause()
	assert.True(t, f.ctrl.Paused())
	f.tick(30)
	assert.Equal(t, 55*time.Second, f.remaining())

	f.ctrl.OnResume()
	assert.False(t, f.ctrl.Paused())
	f.looper.RunDue()
	f.tick(1)
	assert.Equal(t, 54*time.Second, f.remaining())
	assert.Equal(t, 0, f.ctrl.CurrentScore())
	assert.Len(t, f.words, 1)
}

func TestController_CloseCancelsTimer(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	f.ctrl.Close()

	f.tick(120)
	assert.Equal(t, 0, f.looper.Pending())
	assert.Equal(t, 0, f.ctrl.CurrentScore())
}

func TestController_ListenerMayAcknowledgeDuringNotification(t *testing.T) {
	clock := clockwork.NewFakeClock()
	looper := schedule.NewLooper(clock)
	ctrl := NewController(DefaultSettings(1), clock, looper)
	defer ctrl.Close()

	var handled []Buzz
	ctrl.Buzz().Subscribe(func(b Buzz) {
		if b == BuzzNone {
			return
		}
		handled = append(handled, b)
		ctrl.OnBuzzComplete()
	})
	ctrl.OnCorrect()

	assert.Equal(t, []Buzz{BuzzTimesUp, BuzzCorrect, BuzzTimesUp}, handled)
	b, _ := ctrl.Buzz().Get()
	assert.Equal(t, BuzzNone, b)
}

func TestController_SameSeedSameOrder(t *testing.T) {
	a := newFixture(t, DefaultSettings(42))
	b := newFixture(t, DefaultSettings(42))
	for i := 0; i < 5; i++ {
		a.ctrl.OnSkip()
		b.ctrl.OnSkip()
	}
	assert.Equal(t, a.words, b.words)
}

func TestController_ZeroDurationEndsRound(t *testing.T) {
	s := DefaultSettings(1)
	s.Duration = 0
	f := newFixture(t, s)

	assert.True(t, f.ctrl.Over())
	assert.Equal(t, 1, f.finish)
	assert.Equal(t, -len(DefaultWords), f.ctrl.CurrentScore())
}

func TestController_AnswerDuringLastWordNotification(t *testing.T) {
	s := DefaultSettings(1)
	s.Words = []string{"A", "B"}
	f := newFixture(t, s)

	skipped := false
	f.ctrl.Score().Subscribe(func(score int) {
		if score == 1 && !skipped {
			skipped = true
			f.ctrl.OnSkip()
		}
	})
	f.ctrl.OnCorrect()
	f.looper.RunDue()

	require.True(t, skipped)
	require.Len(t, f.words, 3)
	assert.ElementsMatch(t, []string{"A", "B"}, f.words[:2])
	assert.Empty(t, f.words[2], "the round ends after the word it replaced")
	word, _ := f.ctrl.Word().Get()
	assert.Empty(t, word)

	assert.True(t, f.ctrl.Over())
	assert.Equal(t, 1, f.finish)
	assert.Equal(t, 0, f.ctrl.CurrentScore())
	assert.Equal(t, BuzzGameOver, f.buzzes[len(f.buzzes)-1])
	assert.Equal(t, 0, f.looper.Pending(), "no countdown after the end")

	f.tick(120)
	assert.Len(t, f.words, 3)
	assert.Equal(t, 0, f.ctrl.CurrentScore())
}

func TestController_StaleTickIgnored(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	old := tickHandler{c: f.ctrl, seq: f.ctrl.seq}

	f.ctrl.OnCorrect()
	f.looper.RunDue()
	f.buzzes = nil

	old.OnTick(5 * time.Second)
	old.OnFinish()

	assert.Equal(t, 60*time.Second, f.remaining())
	assert.Empty(t, f.buzzes)
	assert.Equal(t, 1, f.ctrl.CurrentScore())
	assert.Len(t, f.words, 2)
}

func TestController_PausedDropsTicks(t *testing.T) {
	f := newFixture(t, DefaultSettings(1))
	current := tickHandler{c: f.ctrl, seq: f.ctrl.seq}
	f.tick(55)
	f.buzzes = nil

	f.ctrl.OnPause()
	current.OnTick(time.Second)

	assert.Equal(t, 5*time.Second, f.remaining())
	assert.Empty(t, f.buzzes)
}

func TestController_ConcurrentAnswers(t *testing.T) {
	f := newFixture(t, DefaultSettings(5))

	var wg sync.WaitGroup
	for i := 0; i < len(DefaultWords)+6; i++ {
		wg.Add(1)
		go func(correct bool) {
			defer wg.Done()
			if correct {
				f.ctrl.OnCorrect()
			} else {
				f.ctrl.OnSkip()
			}
		}(i%2 == 0)
	}
	wg.Wait()
	f.looper.RunDue()

	assert.True(t, f.ctrl.Over())
	assert.Equal(t, 1, f.finish)
	require.Len(t, f.words, len(DefaultWords)+1)
	assert.Empty(t, f.words[len(DefaultWords)])
	score, _ := f.ctrl.Score().Get()
	assert.Equal(t, f.ctrl.CurrentScore(), score)
	assert.Equal(t, 0, f.looper.Pending())
}
