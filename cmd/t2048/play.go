package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/t2048"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close, the session is over
	defer closeLog()

	// Get terminal size for the first frame; Bubble Tea sends the real size
	// right after start.
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = resolveSeed(cfg.Seed)

	game := t2048.NewSeeded(rc.Seed)
	logger.Info("session start", "seed", rc.Seed, "board", game.Board())

	err = tui.Run(game, rc, tui.Options{
		Color:    cfg.Display.Color,
		ShowHelp: cfg.Display.ShowHelp,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("terminal loop failed", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}

	return nil
}
