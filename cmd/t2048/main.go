// t2048 is the sliding-tile puzzle 2048 in the terminal.
//
// Usage:
//
//	t2048                   - Play
//	t2048 simulate          - Replay a key script headlessly and print the final frame
//
// Global flags:
//
//	--seed <value>      - RNG seed for reproducible spawns (0 = from clock)
//	--config <path>     - Settings file (default: ~/.term2048/config.yaml)
//	--log-file <path>   - Write a session log to this file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `Slide the tiles with W/A/S/D or the arrow keys. Equal tiles merge;
reach 2048 to win. R restarts, Q quits.

Examples:
  t2048
  t2048 --seed 42
  t2048 --log-file ~/.term2048/t2048.log --log-level debug
  t2048 simulate --seed 42 --keys wasdwasd`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the session log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simulateCmd)
}
