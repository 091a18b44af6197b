// Package flappy implements the Flappy Bird simulation: a bird under constant
// gravity flaps through gaps in scrolling pipes.
//
// The package is pure game logic. A Session owns all mutable state and is
// advanced one fixed tick at a time by a frontend, which reads back a
// Snapshot to draw.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Field is the size of the play field in world units.
type Field struct {
	Width  float64
	Height float64
}

// Avatar is the bird. Y grows downward; negative velocity moves up.
type Avatar struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Velocity float64
}

// HSpan returns the avatar's horizontal extent.
func (a Avatar) HSpan() core.Span {
	return core.Span{Min: a.X, Max: a.X + a.Width}
}

// Obstacle is a pipe pair with a vertical gap between GapTop and GapBottom.
type Obstacle struct {
	X         float64
	Width     float64
	GapTop    float64
	GapBottom float64
	Passed    bool
}

// HSpan returns the obstacle's horizontal extent.
func (o Obstacle) HSpan() core.Span {
	return core.Span{Min: o.X, Max: o.X + o.Width}
}

// Gap returns the passable opening height.
func (o Obstacle) Gap() float64 {
	return o.GapBottom - o.GapTop
}

// World is the mutable state of one run.
type World struct {
	Field     Field
	Avatar    Avatar
	Obstacles []Obstacle // spawn order, oldest first
	Score     int
	Ticks     int64
	LastSpawn int64 // clock reading of the last spawn
}

func newAvatar(p config.FlappyPlayer) Avatar {
	return Avatar{
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
	}
}
