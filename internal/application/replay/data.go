package replay

import (
	"time"

	"github.com/younwookim/letsmime/internal/application/round"
)

// Action is a player input that changes the round
type Action string

const (
	ActionCorrect Action = "correct"
	ActionSkip    Action = "skip"
	ActionPause   Action = "pause"
	ActionResume  Action = "resume"
)

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	switch a {
	case ActionCorrect, ActionSkip, ActionPause, ActionResume:
		return true
	}
	return false
}

// Entry records one action and when it happened
type Entry struct {
	At int64  `json:"at"` // Milliseconds since round start
	A  Action `json:"a"`
}

// ReplayData contains all data needed to replay a round
type ReplayData struct {
	Version  string `json:"version"`
	RoundID  string `json:"roundId"`
	Seed     int64  `json:"seed"`
	WordPack string `json:"wordPack"`
	// Round holds the countdown the round was played with. Recordings
	// without it replay with the current settings.
	Round      *RoundSettings `json:"round,omitempty"`
	StartTime  string         `json:"startTime"`
	DurationMs int64          `json:"durationMs"`
	FinalScore int            `json:"finalScore"`
	Finished   bool           `json:"finished"`
	Actions    []Entry        `json:"actions"`
}

// RoundSettings is the countdown part of round.Settings
type RoundSettings struct {
	WordDurationMs int64 `json:"wordDurationMs"`
	TickIntervalMs int64 `json:"tickIntervalMs"`
	PanicSeconds   int64 `json:"panicSeconds"`
}

// NewRoundSettings captures the countdown of s
func NewRoundSettings(s round.Settings) *RoundSettings {
	return &RoundSettings{
		WordDurationMs: s.Duration.Milliseconds(),
		TickIntervalMs: s.Interval.Milliseconds(),
		PanicSeconds:   s.PanicSeconds,
	}
}

// Settings returns base with the recorded seed and countdown applied. The
// words still come from base.
func (d ReplayData) Settings(base round.Settings) round.Settings {
	base.Seed = d.Seed
	if d.Round != nil {
		base.Duration = time.Duration(d.Round.WordDurationMs) * time.Millisecond
		base.Interval = time.Duration(d.Round.TickIntervalMs) * time.Millisecond
		base.PanicSeconds = d.Round.PanicSeconds
	}
	return base
}
