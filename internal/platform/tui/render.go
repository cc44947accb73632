package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skyroads/internal/core"
)

// ansi256 holds the terminal color of each core.Color. Empty means the
// terminal default.
var ansi256 = [...]string{
	core.ColorDefault:     "",
	core.ColorRed:         "196",
	core.ColorGreen:       "46",
	core.ColorYellow:      "226",
	core.ColorBlue:        "33",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightWhite: "15",
	core.ColorOrange:      "208",
	core.ColorPurple:      "129",
	core.ColorGray:        "240",
}

var palette = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansi256))
	for i, code := range ansi256 {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen turns s into styled terminal text. Each run of same-colored
// cells on a row is rendered with one style so escapes stay few.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out, run strings.Builder
	out.Grow(w*h*2 + h)

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}
