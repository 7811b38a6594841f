package config

import "time"

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display  DisplayConfig `json:"display"`
	Round    RoundConfig   `json:"round"`
	Haptics  HapticsConfig `json:"haptics"`
	WordPack string        `json:"wordPack"` // Name of the file under words/, without extension
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// RoundConfig configures the countdown for each word
type RoundConfig struct {
	DurationMs     int64 `json:"durationMs"`     // Time allowed per word
	TickIntervalMs int64 `json:"tickIntervalMs"` // Countdown tick interval
	PanicSeconds   int64 `json:"panicSeconds"`   // Buzz every tick from this many seconds left
}

// Duration returns the per-word time limit
func (r RoundConfig) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// Interval returns the tick interval
func (r RoundConfig) Interval() time.Duration {
	return time.Duration(r.TickIntervalMs) * time.Millisecond
}

type HapticsConfig struct {
	Enabled   bool    `json:"enabled"`
	Magnitude float64 `json:"magnitude"` // 0.0 - 1.0
}

// WordPack is a YAML word list under words/
type WordPack struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}
