package headless

import "github.com/vovakirdan/tui-flappy/internal/games/flappy"

// Autopilot decides when to flap by looking one tick ahead: it flaps as
// soon as the bird's bottom edge would sink to just above the bottom of the
// next gap. A flap lifts the bird by a little under the gap size with the
// default tuning, so it stays clear of the top pipe.
type Autopilot struct {
	// Clearance is how far above the gap bottom the bird's bottom edge is kept.
	Clearance float64
	// Gravity is used to predict the next position.
	Gravity float64
}

// NewAutopilot creates an autopilot for the given gravity.
func NewAutopilot(gravity float64) Autopilot {
	return Autopilot{Clearance: 6, Gravity: gravity}
}

// ShouldFlap reports whether to flap before the next tick.
func (p Autopilot) ShouldFlap(snap flappy.Snapshot) bool {
	a := snap.Avatar
	if a.Velocity < 0 {
		return false
	}

	floor := snap.Field.Height * 0.6
	for _, o := range snap.Obstacles {
		if o.X+o.Width >= a.X {
			floor = o.GapBottom
			break
		}
	}

	nextBottom := a.Y + a.Height + a.Velocity + p.Gravity
	return nextBottom > floor-p.Clearance
}
