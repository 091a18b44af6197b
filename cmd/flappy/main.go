// flappy is a terminal Flappy Bird clone.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy simulate          - Let the autopilot play without a display
//	flappy list              - List available frontends
//	flappy config show       - Print the effective configuration
//	flappy config validate   - Check a configuration file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible pipes
//	--config <path>       - Custom config file (.yaml or .toml)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/headless"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes in your terminal",
	Long: `Flappy is a terminal version of the one-button arcade game.
Flap to stay in the air, pass through the gaps between pipes and
avoid the ground.

Available commands:
  play      - Play in the terminal
  simulate  - Let the autopilot play without a display
  list      - Show available frontends
  config    - Inspect and validate configuration

Examples:
  flappy play
  flappy play --frontend tcell --difficulty hard
  flappy simulate --runs 10 --seed 42
  flappy config show --format toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
