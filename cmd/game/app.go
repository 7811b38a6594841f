package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/younwookim/letsmime/internal/application/game"
	"github.com/younwookim/letsmime/internal/application/round"
	"github.com/younwookim/letsmime/internal/application/scene"
	"github.com/younwookim/letsmime/internal/application/scene/playing"
	"github.com/younwookim/letsmime/internal/application/scene/score"
	"github.com/younwookim/letsmime/internal/application/scene/title"
	"github.com/younwookim/letsmime/internal/infrastructure/config"
	"github.com/younwookim/letsmime/internal/infrastructure/haptic"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

// app builds the scenes and owns what they share: the clock, the looper
// pumped by the game loop and the buzzer.
type app struct {
	cfg        *config.GameConfig
	clock      clockwork.Clock
	looper     *schedule.Looper
	buzzer     *haptic.Buzzer
	recordPath string
	rounds     int
	seed       func() int64
}

func newApp(cfg *config.GameConfig, clock clockwork.Clock, vib haptic.Vibrator, recordPath string) *app {
	looper := schedule.NewLooper(clock)
	return &app{
		cfg:        cfg,
		clock:      clock,
		looper:     looper,
		buzzer:     haptic.NewBuzzer(looper, vib, cfg.Settings.Haptics.Enabled),
		recordPath: recordPath,
		seed:       func() int64 { return time.Now().UnixNano() },
	}
}

// Game creates the scene manager starting on the title screen
func (a *app) Game() *game.Game {
	d := a.cfg.Settings.Display
	g := game.New(a.Title(), d.ScreenWidth, d.ScreenHeight)
	g.SetPump(a.looper)
	g.SetDT(1.0 / float64(d.Framerate))
	return g
}

// Title implements scene.Navigator
func (a *app) Title() scene.Scene {
	d := a.cfg.Settings.Display
	return title.New(a, d.ScreenWidth, d.ScreenHeight, a.cfg.Words.Name)
}

// Play starts a new round (implements scene.Navigator)
func (a *app) Play() scene.Scene {
	d := a.cfg.Settings.Display
	a.rounds++
	ctrl := round.NewController(roundSettings(a.cfg, a.seed()), a.clock, a.looper)
	return playing.New(ctrl, a, playing.Options{
		ScreenW:    d.ScreenWidth,
		ScreenH:    d.ScreenHeight,
		Clock:      a.clock,
		Buzzer:     a.buzzer,
		RecordPath: roundRecordPath(a.recordPath, a.rounds),
		WordPack:   a.cfg.Words.Name,
	})
}

// Score implements scene.Navigator
func (a *app) Score(result int) scene.Scene {
	d := a.cfg.Settings.Display
	return score.New(a, result, d.ScreenWidth, d.ScreenHeight)
}

// roundRecordPath keeps the first round at base and numbers the ones played
// after it, so "play again" does not overwrite a recording: round.json,
// round_2.json, round_3.json.
func roundRecordPath(base string, n int) string {
	if base == "" || n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), n, ext)
}
