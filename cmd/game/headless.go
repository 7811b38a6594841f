package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/application/round"
	"github.com/younwookim/letsmime/internal/infrastructure/haptic"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

const headlessHelp = "c = correct, s = skip, p = pause, r = resume, q = quit"

// lockedWriter serializes writes from the timer goroutines and the command
// loop
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, format, args...)
}

// runHeadless plays one round in the terminal. Commands are read line by
// line from in. It returns the score when the round finishes, on q or at
// the end of input.
func runHeadless(ctx context.Context, in io.Reader, out io.Writer, settings round.Settings,
	clock clockwork.Clock, vib haptic.Vibrator, haptics bool) (int, error) {
	sched := schedule.NewAfterFunc(clock)
	buzzer := haptic.NewBuzzer(sched, vib, haptics)
	defer buzzer.Stop()

	w := &lockedWriter{w: out}
	w.printf("%s\n", headlessHelp)

	ctrl := round.NewController(settings, clock, sched)
	defer ctrl.Close()

	done := make(chan struct{})
	var once sync.Once

	cancels := []func(){
		ctrl.Word().Subscribe(func(word string) {
			if word != "" {
				w.printf("word: %s\n", word)
			}
		}),
		ctrl.Score().Subscribe(func(s int) { w.printf("score: %d\n", s) }),
		ctrl.Buzz().Subscribe(func(b round.Buzz) {
			if b == round.BuzzNone {
				return
			}
			buzzer.Buzz(b.Pattern())
			if b == round.BuzzPanic {
				text, _ := ctrl.TimeText().Get()
				w.printf("hurry! %s\n", text)
			}
			ctrl.OnBuzzComplete()
		}),
		ctrl.Finished().Subscribe(func(finished bool) {
			if !finished {
				return
			}
			w.printf("game over, score %d\n", ctrl.CurrentScore())
			ctrl.OnGameFinishComplete()
			once.Do(func() { close(done) })
		}),
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctrl.CurrentScore(), ctx.Err()
		case <-done:
			return ctrl.CurrentScore(), nil
		case line, ok := <-lines:
			if !ok {
				// the last answer may have ended the round while a timer
				// goroutine is still publishing it
				if ctrl.Over() {
					<-done
				}
				return ctrl.CurrentScore(), nil
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "c":
				ctrl.OnCorrect()
			case "s":
				ctrl.OnSkip()
			case "p":
				ctrl.OnPause()
				w.printf("paused\n")
			case "r":
				ctrl.OnResume()
			case "q":
				log.Info().Str("round_id", ctrl.RoundID()).Msg("round abandoned")
				return ctrl.CurrentScore(), nil
			case "":
			default:
				w.printf("%s\n", headlessHelp)
			}
		}
	}
}
