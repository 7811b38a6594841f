package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/letsmime/internal/application/replay"
	"github.com/younwookim/letsmime/internal/application/round"
)

// Recorder collects the actions of one round for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
}

// NewRecorder creates a recorder for a round played with s
func NewRecorder(roundID string, s round.Settings, wordPack string, start time.Time) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			RoundID:   roundID,
			Seed:      s.Seed,
			WordPack:  wordPack,
			Round:     replay.NewRoundSettings(s),
			StartTime: start.Format(time.RFC3339),
			Actions:   make([]replay.Entry, 0, 32),
		},
		recording: true,
	}
}

// Record appends an action that happened at offset from the round start
func (r *Recorder) Record(a replay.Action, at time.Duration) {
	if !r.recording {
		return
	}
	r.data.Actions = append(r.data.Actions, replay.Entry{At: at.Milliseconds(), A: a})
}

// Finish stamps the outcome and stops recording
func (r *Recorder) Finish(at time.Duration, score int, finished bool) {
	if !r.recording {
		return
	}
	r.data.DurationMs = at.Milliseconds()
	r.data.FinalScore = score
	r.data.Finished = finished
	r.recording = false
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// ActionCount returns the number of recorded actions
func (r *Recorder) ActionCount() int {
	return len(r.data.Actions)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
