package flappy

// Hit names what ended a run.
type Hit int

const (
	HitNone Hit = iota
	HitGround
	HitPipe
)

// String returns a human-readable name for the hit.
func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitGround:
		return "ground"
	case HitPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of evaluating one tick.
type Verdict struct {
	Passed int // pipes passed this tick
	Hit    Hit
}

// Terminal reports whether the run is over.
func (v Verdict) Terminal() bool {
	return v.Hit != HitNone
}

// evaluate awards pass events and detects terminal collisions.
// It marks passed pipes in place but leaves score and phase to the caller.
//
// Touching the top of the field is not a collision: the physics step
// already clamps the avatar there.
func evaluate(a Avatar, obs []Obstacle, fieldHeight float64) Verdict {
	var v Verdict

	for i := range obs {
		if !obs[i].Passed && obs[i].X+obs[i].Width < a.X {
			obs[i].Passed = true
			v.Passed++
		}
	}

	if a.Y+a.Height > fieldHeight {
		v.Hit = HitGround
		return v
	}

	for _, o := range obs {
		if hitsPipe(a, o) {
			v.Hit = HitPipe
			return v
		}
	}

	return v
}

// hitsPipe reports whether the avatar overlaps o horizontally while any
// part of it is outside the gap.
func hitsPipe(a Avatar, o Obstacle) bool {
	if !a.HSpan().Overlaps(o.HSpan()) {
		return false
	}
	return a.Y < o.GapTop || a.Y+a.Height > o.GapBottom
}
