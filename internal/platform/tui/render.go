package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// styles holds one lipgloss style per core.Color. Bright colors render bold
// so the ship, shots and banners stand out on 16-color terminals. It is
// built once and only read afterwards, so SSH sessions can share it.
var styles = func() []lipgloss.Style {
	out := make([]lipgloss.Style, core.ColorGray+1)
	for c := range out {
		color := core.Color(c)
		out[c] = lipgloss.NewStyle()
		if code := color.ANSI(); code != "" {
			out[c] = out[c].Foreground(lipgloss.Color(code)).Bold(color.Bright())
		}
	}
	return out
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(styles) {
		return styles[core.ColorDefault]
	}
	return styles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
