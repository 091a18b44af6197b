package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Theme holds the lipgloss styles used to draw the game screen.
type Theme struct {
	Cells  map[core.Color]lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() *Theme {
	return &Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:      lipgloss.NewStyle(),
			core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func (t *Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := t.Cells[startColor]
			if !ok {
				style = t.Cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
