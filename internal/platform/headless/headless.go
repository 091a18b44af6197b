// Package headless provides a frontend without any display. It flies the
// bird with an autopilot as fast as the CPU allows and logs each run, which
// makes it useful for soak-testing configs and seeds.
package headless

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Result summarizes one finished run.
type Result struct {
	Run   int
	Score int
	Ticks int64
	Hit   flappy.Hit
}

// Frontend plays Runs runs back to back.
type Frontend struct {
	Runs    int
	results []Result
}

// New creates a headless frontend that plays the given number of runs.
func New(runs int) *Frontend {
	if runs < 1 {
		runs = 1
	}
	return &Frontend{Runs: runs}
}

// Name returns the frontend identifier.
func (f *Frontend) Name() string {
	return "headless"
}

// Description returns a one-line summary.
func (f *Frontend) Description() string {
	return "No display; an autopilot plays and each run is logged"
}

// Results returns the runs finished so far.
func (f *Frontend) Results() []Result {
	return f.results
}

// Run plays the configured number of runs. A run ends on a collision or
// when it reaches opts.MaxTicks. A run left active by an earlier caller is
// stopped first. Cancelling ctx stops between two ticks.
func (f *Frontend) Run(ctx context.Context, s *flappy.Session, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pilot := NewAutopilot(s.Config().Physics.Gravity)
	f.results = f.results[:0]
	s.Stop()

	for i := 0; i < f.Runs; i++ {
		s.Start()

		for s.Phase() == flappy.PhaseRunning {
			if err := ctx.Err(); err != nil {
				return err
			}

			snap := s.Snapshot()
			if opts.MaxTicks > 0 && snap.Ticks >= opts.MaxTicks {
				break
			}
			if pilot.ShouldFlap(snap) {
				s.Flap()
			}
			s.Tick()
		}

		if s.Phase() == flappy.PhaseRunning {
			s.Stop()
			logger.Info("run stopped at tick limit", "run", s.Snapshot().Run, "ticks", opts.MaxTicks)
		}

		snap := s.Snapshot()
		r := Result{Run: snap.Run, Score: snap.Score, Ticks: snap.Ticks, Hit: snap.LastHit}
		logger.Info("run finished", "run", r.Run, "score", r.Score, "ticks", r.Ticks, "hit", r.Hit)
		f.results = append(f.results, r)
	}

	return nil
}

func init() {
	registry.Register("headless", func() registry.Frontend {
		return New(1)
	})
}
