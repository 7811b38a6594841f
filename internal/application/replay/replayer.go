package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/application/round"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

// ErrUnknownAction is returned for a recording with an action this build
// does not understand.
var ErrUnknownAction = errors.New("unknown action")

// Result is the outcome of a replayed round
type Result struct {
	RoundID  string
	Score    int
	Words    []string
	Finished bool
}

// Matches reports whether the replay ended the way the recording did
func (r Result) Matches(data ReplayData) bool {
	return r.Score == data.FinalScore && r.Finished == data.Finished
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	for i, e := range data.Actions {
		if !e.A.Valid() {
			return nil, fmt.Errorf("action %d %q: %w", i, e.A, ErrUnknownAction)
		}
	}

	return &data, nil
}

// Run plays the recorded actions against a fresh round on a fake clock.
// The round uses settings with the recorded seed and countdown, so the words
// come out in the same order and expire when they did.
func Run(data ReplayData, settings round.Settings) Result {
	clock := clockwork.NewFakeClock()
	looper := schedule.NewLooper(clock)
	start := clock.Now()

	ctrl := round.NewController(data.Settings(settings), clock, looper)
	defer ctrl.Close()

	var words []string
	cancel := ctrl.Word().Subscribe(func(w string) {
		if w != "" {
			words = append(words, w)
		}
	})
	defer cancel()

	// advance steps the clock through every task due up to at
	advance := func(at time.Duration) {
		target := start.Add(at)
		looper.RunDue()
		for {
			due, ok := looper.NextDue()
			if !ok || due.After(target) {
				break
			}
			clock.Advance(due.Sub(clock.Now()))
			looper.RunDue()
		}
		if d := target.Sub(clock.Now()); d > 0 {
			clock.Advance(d)
		}
	}

	for _, e := range data.Actions {
		advance(time.Duration(e.At) * time.Millisecond)
		switch e.A {
		case ActionCorrect:
			ctrl.OnCorrect()
		case ActionSkip:
			ctrl.OnSkip()
		case ActionPause:
			ctrl.OnPause()
		case ActionResume:
			ctrl.OnResume()
		}
	}
	advance(time.Duration(data.DurationMs) * time.Millisecond)

	res := Result{
		RoundID:  ctrl.RoundID(),
		Score:    ctrl.CurrentScore(),
		Words:    words,
		Finished: ctrl.Over(),
	}
	log.Info().
		Str("recorded_round", data.RoundID).
		Int("score", res.Score).
		Int("recorded_score", data.FinalScore).
		Bool("match", res.Matches(data)).
		Msg("replay complete")
	return res
}
