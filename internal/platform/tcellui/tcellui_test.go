package tcellui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newTestLoop(t *testing.T, w, h int) *loop {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	s, err := flappy.NewSession(config.Default(), 7)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	l := newLoop(screen, s, registry.Options{Runtime: core.DefaultRuntimeConfig()})
	t.Cleanup(func() { l.ticker.Stop() })
	return l
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyRune, ' ', core.ActionFlap},
		{tcell.KeyUp, 0, core.ActionFlap},
		{tcell.KeyEnter, 0, core.ActionStart},
		{tcell.KeyRune, 'r', core.ActionStart},
		{tcell.KeyRune, 'p', core.ActionTogglePause},
		{tcell.KeyEscape, 0, core.ActionTogglePause},
		{tcell.KeyRune, 'q', core.ActionQuit},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
		{tcell.KeyRune, 'x', core.ActionNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.r); got != tt.want {
			t.Errorf("actionFor(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestTickerFollowsPhase(t *testing.T) {
	l := newTestLoop(t, 100, 31)

	l.syncTicker()
	if l.ticking {
		t.Fatal("ticker should be stopped while idle")
	}

	l.session.Start()
	l.syncTicker()
	if !l.ticking {
		t.Fatal("ticker should run while running")
	}

	l.input.Set(core.ActionFlap)
	l.tick()
	if got := l.session.Snapshot().Avatar.Velocity; got != -9.5 {
		t.Errorf("velocity = %v, want -9.5", got)
	}
	if !l.input.Empty() {
		t.Error("input should be cleared after a tick")
	}

	l.session.Pause()
	l.tick()
	if l.ticking {
		t.Error("ticker should stop once paused")
	}
	if got := l.session.Snapshot().Ticks; got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
}

func TestResizeEvent(t *testing.T) {
	l := newTestLoop(t, 80, 24)

	if !l.handleEvent(tcell.NewEventResize(100, 31)) {
		t.Fatal("resize should not quit")
	}
	if l.buf.Width() != 100 || l.buf.Height() != 31 {
		t.Errorf("buffer = %dx%d, want 100x31", l.buf.Width(), l.buf.Height())
	}
	if got := l.session.Snapshot().Field.Width; got != 1000 {
		t.Errorf("field width = %v, want 1000", got)
	}

	l.handleEvent(tcell.NewEventResize(2, 24))
	if got := l.session.Snapshot().Field.Width; got != 1000 {
		t.Errorf("rejected resize changed field width to %v", got)
	}
}

func TestDraw(t *testing.T) {
	l := newTestLoop(t, 80, 24)
	l.session.Start()
	for range 5 {
		l.tick()
	}
	l.draw()
}

func TestLimitReached(t *testing.T) {
	l := newTestLoop(t, 80, 24)
	l.maxTicks = 3
	l.session.Start()
	for range 3 {
		if l.limitReached() {
			t.Fatal("limit reached too early")
		}
		l.tick()
	}
	if !l.limitReached() {
		t.Error("expected limit after 3 ticks")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	f := &Frontend{newScreen: func() (tcell.Screen, error) {
		return tcell.NewSimulationScreen("UTF-8"), nil
	}}
	s, err := flappy.NewSession(config.Default(), 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = f.Run(ctx, s, registry.Options{Runtime: core.DefaultRuntimeConfig()})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
}
