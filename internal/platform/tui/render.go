package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Palette maps core.Color to lipgloss styles for one output renderer.
// SSH sessions get their own palette so color detection follows the client.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds styles bound to r. A nil r uses the default renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:     r.NewStyle(),
		core.ColorRed:         fg("1"),
		core.ColorGreen:       fg("2"),
		core.ColorYellow:      fg("3"),
		core.ColorBrightGreen: fg("10").Bold(true),
		core.ColorBrightWhite: fg("15"),
		core.ColorGray:        fg("245"),
		core.ColorDarkGray:    fg("239"),
	}}
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen styles s line by line. Consecutive cells of one color are
// rendered as a single span.
func (p Palette) RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var line, span strings.Builder

	for y := range lines {
		line.Reset()
		span.Reset()
		cur := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != cur {
				line.WriteString(p.style(cur).Render(span.String()))
				span.Reset()
				cur = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		if span.Len() > 0 {
			line.WriteString(p.style(cur).Render(span.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
