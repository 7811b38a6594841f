package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/application/round"
	"github.com/younwookim/letsmime/internal/infrastructure/config"
	"github.com/younwookim/letsmime/internal/infrastructure/haptic"
	"github.com/younwookim/letsmime/internal/infrastructure/logging"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: bundled configs)")
	wordsFlag := flag.String("words", "", "Word pack to play (e.g., -words animals)")
	recordFlag := flag.String("record", "", "Record rounds to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded round and print the result")
	headless := flag.Bool("headless", false, "Play in the terminal without a window")
	flag.Parse()

	env, err := config.LoadEnv(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(env.LogLevel, env.LogPretty, os.Stderr)

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open configs")
	}

	if *replayFlag != "" {
		if err := runReplay(*replayFlag, loader, os.Stdout); err != nil {
			log.Fatal().Err(err).Str("path", *replayFlag).Msg("replay failed")
		}
		return
	}

	wordPack := *wordsFlag
	if wordPack == "" {
		wordPack = env.WordPack
	}
	cfg, err := loader.LoadAll(wordPack)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	env.Apply(cfg.Settings)

	log.Info().
		Str("word_pack", cfg.Words.Name).
		Int("words", len(cfg.Words.Words)).
		Bool("haptics", cfg.Settings.Haptics.Enabled).
		Msg("config loaded")

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		score, err := runHeadless(ctx, os.Stdin, os.Stdout, roundSettings(cfg, time.Now().UnixNano()),
			clockwork.NewRealClock(), haptic.LogVibrator{}, cfg.Settings.Haptics.Enabled)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("headless round failed")
		}
		log.Info().Int("score", score).Msg("bye")
		return
	}

	vib := haptic.EbitenVibrator{Magnitude: cfg.Settings.Haptics.Magnitude}
	a := newApp(cfg, clockwork.NewRealClock(), vib, *recordFlag)

	d := cfg.Settings.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Let's Mime")
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(a.Game()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// newLoader reads configs from dir, or from the bundled copy when dir is
// empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// roundSettings turns the loaded config into round settings
func roundSettings(cfg *config.GameConfig, seed int64) round.Settings {
	r := cfg.Settings.Round
	return round.Settings{
		Duration:     r.Duration(),
		Interval:     r.Interval(),
		PanicSeconds: r.PanicSeconds,
		Words:        cfg.Words.Words,
		Seed:         seed,
	}
}
