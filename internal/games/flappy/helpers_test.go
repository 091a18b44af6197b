package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestSession(t *testing.T, mutate func(*config.FlappyConfig), opts ...Option) *Session {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}

	s, err := NewSession(cfg, 42, opts...)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// wideGap makes every pipe easy to fly through while hovering near y=300.
func wideGap(cfg *config.FlappyConfig) {
	cfg.Obstacles.GapSize = 500
	cfg.Obstacles.TopMargin = 40
	cfg.Obstacles.BottomMargin = 40
}

// hover flaps whenever the bird sinks below y=300, keeping it roughly
// within [190, 310].
func hover(s *Session) {
	a := s.world.Avatar
	if a.Y > 300 && a.Velocity > 0 {
		s.Flap()
	}
}

type manualClock struct {
	ms int64
}

func (c *manualClock) Now(int64) int64 {
	return c.ms
}
