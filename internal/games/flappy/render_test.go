package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderIdleScreen(t *testing.T) {
	s := newTestSession(t, nil)
	screen := core.NewScreen(80, 24)

	Render(screen, s.Snapshot())

	if screen.Get(0, 23) != GroundChar {
		t.Errorf("ground should be drawn on the bottom row, got %q", screen.Get(0, 23))
	}
	if !strings.Contains(screen.String(), "FLAPPY") {
		t.Error("idle screen should show the title")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
}

func TestRenderScalesWorldToScreen(t *testing.T) {
	snap := Snapshot{
		Phase:  PhaseRunning,
		Field:  Field{Width: 320, Height: 640},
		Avatar: Avatar{X: 80, Y: 320, Width: 40, Height: 30},
		Obstacles: []Obstacle{
			{X: 160, Width: 60, GapTop: 192, GapBottom: 352},
		},
	}
	// 0.25 columns and 0.03125 rows per world unit above the ground row.
	screen := core.NewScreen(80, 21)
	Render(screen, snap)

	if screen.Get(40, 2) != PipeChar {
		t.Errorf("expected pipe body at (40, 2), got %q", screen.Get(40, 2))
	}
	if screen.Get(40, 5) != PipeCapTop {
		t.Errorf("expected top cap at (40, 5), got %q", screen.Get(40, 5))
	}
	if screen.Get(40, 8) != ' ' {
		t.Errorf("expected open gap at (40, 8), got %q", screen.Get(40, 8))
	}
	if screen.Get(54, 11) != PipeCapBottom {
		t.Errorf("expected bottom cap at (54, 11), got %q", screen.Get(54, 11))
	}
	if screen.Get(55, 11) == PipeCapBottom {
		t.Error("pipe should end at column 54")
	}
	if c := screen.GetCell(20, 10); c.Color != core.ColorBrightYellow {
		t.Errorf("expected bird at (20, 10), got %+v", c)
	}
}

func TestRenderOverlays(t *testing.T) {
	screen := core.NewScreen(60, 20)
	field := Field{Width: 400, Height: 600}

	Render(screen, Snapshot{Phase: PhasePaused, Field: field})
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	Render(screen, Snapshot{Phase: PhaseGameOver, Field: field, Score: 3, Best: 7})
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Best: 7") {
		t.Error("game over overlay should show the final and best score")
	}
}

func TestRenderTinyScreenDoesNotPanic(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.Tick()

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		Render(core.NewScreen(size[0], size[1]), s.Snapshot())
	}
}

func TestFieldWidthFor(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		expected   float64
	}{
		{"ground row excluded", 100, 31, 1000},
		{"square cells doubled", 80, 21, 1200},
		{"no room", 80, 1, 0},
		{"no columns", 0, 24, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FieldWidthFor(600, tc.cols, tc.rows); got != tc.expected {
				t.Errorf("FieldWidthFor(600, %d, %d) = %g, expected %g", tc.cols, tc.rows, got, tc.expected)
			}
		})
	}
}
