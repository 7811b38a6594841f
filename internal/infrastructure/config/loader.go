package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRound   = errors.New("invalid round settings")
	ErrEmptyWordPack  = errors.New("word pack has no words")
	ErrDuplicateWord  = errors.New("word pack repeats a word")
	ErrInvalidDisplay = errors.New("invalid display settings")
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Words    *WordPack
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads and validates game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game.json: %w", err)
	}

	return &cfg, nil
}

// LoadWords loads and validates a word pack YAML file
func (l *Loader) LoadWords(name string) (*WordPack, error) {
	path := "words/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word pack %s: %w", name, err)
	}

	var pack WordPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse word pack %s: %w", name, err)
	}
	if pack.Name == "" {
		pack.Name = name
	}

	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("word pack %s: %w", name, err)
	}

	return &pack, nil
}

// LoadAll loads game.json and the word pack it names. A non-empty wordPack
// overrides the one in game.json.
func (l *Loader) LoadAll(wordPack string) (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	if wordPack == "" {
		wordPack = settings.WordPack
	}
	words, err := l.LoadWords(wordPack)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Words:    words,
	}, nil
}

// Validate checks the round and display settings
func (c *SettingsConfig) Validate() error {
	r := c.Round
	if r.DurationMs <= 0 || r.TickIntervalMs <= 0 || r.PanicSeconds < 0 {
		return fmt.Errorf("%w: duration %dms, interval %dms, panic %ds",
			ErrInvalidRound, r.DurationMs, r.TickIntervalMs, r.PanicSeconds)
	}
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 || d.Framerate <= 0 {
		return fmt.Errorf("%w: %dx%d at %d fps", ErrInvalidDisplay, d.ScreenWidth, d.ScreenHeight, d.Framerate)
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.WordPack == "" {
		c.WordPack = "default"
	}
	return nil
}

// Validate trims the words and rejects empty packs and repeats
func (p *WordPack) Validate() error {
	seen := make(map[string]bool, len(p.Words))
	words := p.Words[:0]
	for _, w := range p.Words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		seen[key] = true
		words = append(words, w)
	}
	p.Words = words

	if len(p.Words) == 0 {
		return ErrEmptyWordPack
	}
	return nil
}
