package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Frontend runs a session in a full-screen Bubble Tea program.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Bubble Tea terminal UI with colors and a help line"
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func (Frontend) Run(ctx context.Context, s *flappy.Session, opts registry.Options) error {
	model := NewModel(s, opts.Runtime, opts.Logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}
