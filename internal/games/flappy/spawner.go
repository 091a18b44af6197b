package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Spawner places new pipes at the right edge of the field.
type Spawner struct {
	rng          *rand.Rand
	pipeWidth    float64
	gapSize      float64
	topMargin    float64
	bottomMargin float64
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, o config.FlappyObstacles) *Spawner {
	return &Spawner{
		rng:          rand.New(rand.NewSource(seed)),
		pipeWidth:    o.PipeWidth,
		gapSize:      o.GapSize,
		topMargin:    o.TopMargin,
		bottomMargin: o.BottomMargin,
	}
}

// Reseed restarts the RNG sequence.
func (sp *Spawner) Reseed(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// Due reports whether more than interval has passed since the last spawn.
// It is checked once per tick, so at most one pipe spawns per tick even if
// several intervals elapsed.
func (sp *Spawner) Due(now, last, interval int64) bool {
	return now-last > interval
}

// Spawn creates a pipe at x = field width with its gap top drawn uniformly
// from [topMargin, height-gap-bottomMargin].
func (sp *Spawner) Spawn(f Field) Obstacle {
	lo := sp.topMargin
	hi := f.Height - sp.gapSize - sp.bottomMargin
	gapTop := lo
	if hi > lo {
		gapTop = lo + sp.rng.Float64()*(hi-lo)
	}

	return Obstacle{
		X:         f.Width,
		Width:     sp.pipeWidth,
		GapTop:    gapTop,
		GapBottom: gapTop + sp.gapSize,
	}
}
