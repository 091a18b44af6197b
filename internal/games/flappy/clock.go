package flappy

import "time"

// Clock is the time source of the pipe spawn timer. Now receives the
// session's tick counter; tick-based clocks simply return it.
type Clock interface {
	Now(tick int64) int64
}

// TickClock measures time in simulation ticks. Spawning then depends only on
// how many ticks ran, never on how fast the frontend delivered them.
type TickClock struct{}

// Now returns tick.
func (TickClock) Now(tick int64) int64 {
	return tick
}

// WallClock measures time in milliseconds on the monotonic clock.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

// NewWallClock creates a millisecond clock starting at zero.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(now func() time.Time) *WallClock {
	return &WallClock{start: now(), now: now}
}

// Now returns milliseconds elapsed since the clock was created.
func (c *WallClock) Now(int64) int64 {
	return c.now().Sub(c.start).Milliseconds()
}
