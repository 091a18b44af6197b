package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestFirstTickWithoutFlap(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.Tick()

	a := s.world.Avatar
	if a.Velocity != 0.5 || a.Y != 300.5 {
		t.Errorf("after one tick v=%g y=%g, expected v=0.5 y=300.5", a.Velocity, a.Y)
	}
}

func TestFlapThenTick(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.Flap()

	if s.world.Avatar.Velocity != -10 {
		t.Fatalf("Flap() should set velocity to the jump impulse, got %g", s.world.Avatar.Velocity)
	}

	s.Tick()

	a := s.world.Avatar
	if a.Velocity != -9.5 || a.Y != 290.5 {
		t.Errorf("after flap and tick v=%g y=%g, expected v=-9.5 y=290.5", a.Velocity, a.Y)
	}
}

func TestVelocityGrowsByGravityEachTick(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	prev := s.world.Avatar.Velocity
	for i := 0; i < 20; i++ {
		s.Tick()
		if s.Phase() != PhaseRunning {
			t.Fatalf("run ended early at tick %d", i+1)
		}
		v := s.world.Avatar.Velocity
		if v-prev != 0.5 {
			t.Fatalf("tick %d: velocity went %g -> %g, expected +0.5", i+1, prev, v)
		}
		prev = v
	}
}

func TestStepAvatarClampsAtTop(t *testing.T) {
	a := Avatar{Y: 2, Velocity: -10}
	stepAvatar(&a, config.FlappyPhysics{Gravity: 0.5})

	if a.Y != 0 || a.Velocity != 0 {
		t.Errorf("clamped avatar y=%g v=%g, expected 0, 0", a.Y, a.Velocity)
	}
}

func TestStepAvatarFallSpeedCap(t *testing.T) {
	a := Avatar{Y: 100, Velocity: 7.8}
	stepAvatar(&a, config.FlappyPhysics{Gravity: 0.5, MaxFallSpeed: 8})

	if a.Velocity != 8 || a.Y != 108 {
		t.Errorf("capped avatar y=%g v=%g, expected y=108 v=8", a.Y, a.Velocity)
	}
}

func TestFlapIgnoredOutsideRunning(t *testing.T) {
	s := newTestSession(t, nil)

	s.Flap()
	if s.world.Avatar.Velocity != 0 {
		t.Error("Flap() while idle should be ignored")
	}

	s.Start()
	s.Tick()
	s.Pause()
	before := s.world.Avatar
	s.Flap()
	if s.world.Avatar != before {
		t.Error("Flap() while paused should be ignored")
	}
}
