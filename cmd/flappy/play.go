package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in a full-screen terminal frontend.

Controls:
  Space/Up/W  - Flap
  Enter/R     - Start (or restart after game over)
  P/Esc       - Pause / resume
  Ctrl+S      - Save a screenshot (tui frontend)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  flappy play
  flappy play --frontend tcell
  flappy play --difficulty hard --seed 7
  flappy play --config ./my-flappy.toml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to use (see 'flappy list')")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available frontends.")
		os.Exit(1)
	}

	// The terminal belongs to the frontend, so logs are dropped unless a
	// log file was given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	session, rt, err := newSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontend.Name(), "seed", rt.Seed)
	runErr := frontend.Run(ctx, session, registry.Options{Runtime: rt, Logger: logger})
	if runErr != nil && ctx.Err() == nil {
		logger.Error("frontend failed", "err", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if best := session.Snapshot().Best; best > 0 {
		fmt.Printf("Best score: %d\n", best)
	}
}
