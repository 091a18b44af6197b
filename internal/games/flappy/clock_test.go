package flappy

import (
	"testing"
	"time"
)

func TestTickClock(t *testing.T) {
	if got := (TickClock{}).Now(17); got != 17 {
		t.Errorf("TickClock.Now(17) = %d", got)
	}
}

func TestWallClockMeasuresMilliseconds(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := newWallClock(func() time.Time { return now })

	if got := c.Now(0); got != 0 {
		t.Errorf("Now() at start = %d, expected 0", got)
	}

	now = base.Add(1500 * time.Millisecond)
	if got := c.Now(99); got != 1500 {
		t.Errorf("Now() = %d, expected 1500 regardless of tick", got)
	}
}
