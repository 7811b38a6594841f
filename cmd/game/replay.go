package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/younwookim/letsmime/internal/application/replay"
	"github.com/younwookim/letsmime/internal/infrastructure/config"
)

var errReplayMismatch = errors.New("replay does not match recording")

// runReplay replays a recorded round with the word pack it was recorded on
// and prints the outcome.
func runReplay(path string, loader *config.Loader, out io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	cfg, err := loader.LoadAll(data.WordPack)
	if err != nil {
		return err
	}

	res := replay.Run(*data, roundSettings(cfg, data.Seed))

	fmt.Fprintf(out, "round %s (%s, %d actions)\n", data.RoundID, cfg.Words.Name, len(data.Actions))
	for i, w := range res.Words {
		fmt.Fprintf(out, "%3d. %s\n", i+1, w)
	}
	fmt.Fprintf(out, "score %d (recorded %d), finished %t (recorded %t)\n",
		res.Score, data.FinalScore, res.Finished, data.Finished)

	if !res.Matches(*data) {
		return errReplayMismatch
	}
	return nil
}
