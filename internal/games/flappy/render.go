package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	BirdBodyChar  = '●'
	BirdRiseChar  = '▲'
	BirdGlideChar = '▶'
	BirdDiveChar  = '▼'
)

// Render draws snap into dst, scaling the world field to the screen.
// The bottom row is the ground line and the top row holds the HUD.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 1 || snap.Field.Width <= 0 || snap.Field.Height <= 0 {
		return
	}

	v := newViewport(dst, snap.Field)

	for _, o := range snap.Obstacles {
		drawPipe(dst, v, o)
	}
	drawBird(dst, v, snap.Avatar, snap.Ticks)

	dst.DrawHLine(0, v.groundY, dst.Width(), GroundChar, core.ColorYellow)
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "FLAPPY", "Space to flap  |  Enter to start")
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Enter to restart", snap.Score, snap.Best))
	}
}

// FieldWidthFor returns the field width that keeps the world's aspect ratio
// on a cols x rows screen of the given field height. The bottom row is the
// ground and terminal cells are about twice as tall as they are wide.
// It returns 0 when the screen has no room for the field.
func FieldWidthFor(fieldHeight float64, cols, rows int) float64 {
	if cols <= 0 || rows <= 1 {
		return 0
	}
	return fieldHeight * float64(cols) / float64((rows-1)*2)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy  float64
	groundY int
}

func newViewport(dst *core.Screen, f Field) viewport {
	groundY := dst.Height() - 1
	return viewport{
		sx:      float64(dst.Width()) / f.Width,
		sy:      float64(groundY) / f.Height,
		groundY: groundY,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

func drawPipe(dst *core.Screen, v viewport, o Obstacle) {
	x0 := v.col(o.X)
	x1 := core.Max(v.col(o.X+o.Width), x0+1)
	topEnd := v.row(o.GapTop)
	bottomStart := int(math.Ceil(o.GapBottom * v.sy))

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if topEnd > 0 {
			dst.SetColored(x, topEnd-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := bottomStart; y < v.groundY; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if bottomStart < v.groundY {
			dst.SetColored(x, bottomStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird picks the head glyph from the vertical velocity and flickers the
// body every few ticks as a wing beat.
func drawBird(dst *core.Screen, v viewport, a Avatar, ticks int64) {
	x0 := v.col(a.X)
	y0 := v.row(a.Y)
	w := core.Max(v.col(a.X+a.Width)-x0, 1)
	h := core.Max(v.row(a.Y+a.Height)-y0, 1)

	head := BirdGlideChar
	switch {
	case a.Velocity < -1:
		head = BirdRiseChar
	case a.Velocity > 4:
		head = BirdDiveChar
	}

	body := BirdBodyChar
	if (ticks/8)%2 == 1 {
		body = '◉'
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := body
			if dx == w-1 && dy == 0 {
				r = head
			}
			dst.SetColored(x0+dx, y0+dy, r, core.ColorBrightYellow)
		}
	}
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
