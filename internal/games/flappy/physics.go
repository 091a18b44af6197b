package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// stepAvatar advances the avatar by one tick: velocity first, then position.
// The top of the field is a hard clamp, not a bounce and not a death.
func stepAvatar(a *Avatar, p config.FlappyPhysics) {
	a.Velocity += p.Gravity
	if p.MaxFallSpeed > 0 && a.Velocity > p.MaxFallSpeed {
		a.Velocity = p.MaxFallSpeed
	}
	a.Y += a.Velocity

	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}
}

// flap replaces the current velocity with the jump impulse.
func flap(a *Avatar, p config.FlappyPhysics) {
	a.Velocity = p.JumpImpulse
}
