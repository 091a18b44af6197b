package flappy

import "testing"

func TestEvaluateCollisions(t *testing.T) {
	pipe := Obstacle{X: 100, Width: 60, GapTop: 200, GapBottom: 350}

	tests := []struct {
		name string
		a    Avatar
		hit  Hit
	}{
		{"inside gap", Avatar{X: 100, Y: 250, Width: 40, Height: 30}, HitNone},
		{"flush with gap top", Avatar{X: 100, Y: 200, Width: 40, Height: 30}, HitNone},
		{"flush with gap bottom", Avatar{X: 100, Y: 320, Width: 40, Height: 30}, HitNone},
		{"clips top pipe", Avatar{X: 100, Y: 199, Width: 40, Height: 30}, HitPipe},
		{"clips bottom pipe", Avatar{X: 100, Y: 321, Width: 40, Height: 30}, HitPipe},
		{"front edge enters pipe", Avatar{X: 61, Y: 0, Width: 40, Height: 30}, HitPipe},
		{"front edge touches pipe", Avatar{X: 60, Y: 0, Width: 40, Height: 30}, HitNone},
		{"back edge leaves pipe", Avatar{X: 160, Y: 0, Width: 40, Height: 30}, HitNone},
		{"on the ground line", Avatar{X: 0, Y: 570, Width: 40, Height: 30}, HitNone},
		{"through the ground", Avatar{X: 0, Y: 570.5, Width: 40, Height: 30}, HitGround},
		{"at the ceiling", Avatar{X: 0, Y: 0, Width: 40, Height: 30}, HitNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := []Obstacle{pipe}
			v := evaluate(tc.a, obs, 600)
			if v.Hit != tc.hit {
				t.Errorf("hit = %v, expected %v", v.Hit, tc.hit)
			}
			if v.Terminal() != (tc.hit != HitNone) {
				t.Errorf("Terminal() = %v inconsistent with hit %v", v.Terminal(), v.Hit)
			}
		})
	}
}

// Cross-checks hitsPipe against the pipe drawn as two solid rectangles.
func TestHitsPipeSampled(t *testing.T) {
	pipe := Obstacle{X: 200, Width: 60, GapTop: 180, GapBottom: 330}

	for x := 100.0; x <= 300; x += 2.5 {
		for y := 0.0; y <= 570; y += 2.5 {
			a := Avatar{X: x, Y: y, Width: 40, Height: 30}

			overlapX := x < 260 && x+40 > 200
			inTop := y < 180
			inBottom := y+30 > 330
			expected := overlapX && (inTop || inBottom)

			if got := hitsPipe(a, pipe); got != expected {
				t.Fatalf("hitsPipe(x=%g, y=%g) = %v, expected %v", x, y, got, expected)
			}
		}
	}
}

func TestEvaluateScoresOncePerPipe(t *testing.T) {
	a := Avatar{X: 100, Y: 250, Width: 40, Height: 30}
	obs := []Obstacle{
		{X: 40, Width: 60, GapTop: 200, GapBottom: 350},   // trailing edge exactly at avatar.x
		{X: 39, Width: 60, GapTop: 200, GapBottom: 350},   // just past
		{X: 300, Width: 60, GapTop: 200, GapBottom: 350},  // still ahead
		{X: -10, Width: 60, GapTop: 200, GapBottom: 350, Passed: true},
	}

	v := evaluate(a, obs, 600)
	if v.Passed != 1 {
		t.Fatalf("passed = %d, expected 1", v.Passed)
	}
	if obs[0].Passed || !obs[1].Passed || obs[2].Passed {
		t.Errorf("passed flags = %v %v %v, expected false true false", obs[0].Passed, obs[1].Passed, obs[2].Passed)
	}

	if again := evaluate(a, obs, 600); again.Passed != 0 {
		t.Errorf("second evaluation passed = %d, expected 0", again.Passed)
	}
}
