package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

var flagKeys string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a key script without a terminal",
	Long: `Feeds each character of --keys to a new game as if it were typed,
then prints the final frame and the session state. Characters other than
W/A/S/D/R/Q (in either case) are ignored; Q stops the replay.

With a fixed --seed the output is reproducible.

Examples:
  t2048 simulate --seed 42 --keys wasdwasd
  t2048 simulate --seed 7 --keys "$(yes d | head -50 | tr -d '\n')"`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script, one character per input")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	seed := resolveSeed(cfg.Seed)
	game := t2048.NewSeeded(seed)
	logger.Info("simulation start", "seed", seed, "keys", len(flagKeys))

	for _, a := range core.ActionsFromString(flagKeys) {
		res := game.Step(a)
		logger.Debug("step", "action", a, "changed", res.Changed)
		if res.Status == t2048.StatusQuit {
			break
		}
	}

	rc := core.DefaultConfig()
	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	t2048.Render(screen, game)

	snap := game.Snapshot()
	out := cmd.OutOrStdout()
	for y := range screen.Height() {
		fmt.Fprintln(out, strings.TrimRight(screen.Row(y), " "))
	}
	fmt.Fprintf(out, "state: %s  moves: %d  max tile: %d  seed: %d\n",
		snap.State, snap.Moves, snap.MaxTile, seed)

	return nil
}
