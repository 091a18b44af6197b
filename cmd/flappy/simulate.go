package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagRuns  int
	flagTicks int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play without a display",
	Long: `Run the simulation headless with an autopilot that aims for the
middle of each gap. Each run is logged to stderr and a summary table is
printed when all runs are done. Useful for checking that a config is
playable.

Examples:
  flappy simulate
  flappy simulate --runs 20 --seed 42
  flappy simulate --config ./hard.yaml --ticks 5000 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs to play")
	simulateCmd.Flags().Int64Var(&flagTicks, "ticks", 100000, "Stop when a run reaches this many ticks (0 = no limit)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := headless.New(flagRuns)
	opts := registry.Options{Runtime: rt, Logger: logger, MaxTicks: flagTicks}
	if err := sim.Run(ctx, session, opts); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResults(sim.Results(), session.Snapshot().Best, rt.Seed)
}

func printResults(results []headless.Result, best int, seed int64) {
	if len(results) == 0 {
		fmt.Println("No runs finished.")
		return
	}

	fmt.Printf("Seed %d\n\n", seed)
	fmt.Printf("  %-4s  %6s  %8s  %s\n", "Run", "Score", "Ticks", "Ended by")
	fmt.Printf("  %-4s  %6s  %8s  %s\n", "---", "-----", "-----", "--------")
	for _, r := range results {
		end := r.Hit.String()
		if r.Hit == flappy.HitNone {
			end = "tick limit"
		}
		fmt.Printf("  %-4d  %6d  %8d  %s\n", r.Run, r.Score, r.Ticks, end)
	}
	fmt.Println()
	fmt.Printf("Best score: %d\n", best)
}
