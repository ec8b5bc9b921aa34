package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mirror-lane/internal/core"
)

// ansiCodes is the terminal colour for each screen colour. An empty code
// leaves the terminal's own foreground.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Score text and "+1" bursts stand out from the sprites.
var boldColors = map[core.Color]bool{
	core.ColorBrightGreen: true,
	core.ColorBrightWhite: true,
}

// Palette holds one lipgloss style per screen colour, bound to a renderer
// so the colour profile follows the output the program draws to.
type Palette struct {
	styles [len(ansiCodes)]lipgloss.Style
}

// NewPalette builds the styles for r.
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{}
	for c, code := range ansiCodes {
		st := r.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		if boldColors[core.Color(c)] {
			st = st.Bold(true)
		}
		p.styles[c] = st
	}
	return p
}

// DefaultPalette builds the styles for stdout.
func DefaultPalette() *Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// Style returns the style for c. Unknown colours render plain.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if int(c) < 0 || int(c) >= len(p.styles) {
		return p.styles[core.ColorDefault]
	}
	return p.styles[c]
}

// Render converts a Screen buffer to a styled string, one styled run per
// change of colour along a row.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
