package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ceefax/internal/teletext"
)

// RenderGrid turns the renderer's cells into styled terminal text. Adjacent
// cells with the same style are emitted as one run.
func RenderGrid(g teletext.Grid) string {
	rows := make([]string, 0, g.Height())
	for _, row := range g.Cells {
		var b strings.Builder
		var run []rune
		var runStyle teletext.Cell

		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(cellStyle(runStyle).Render(string(run)))
			run = run[:0]
		}

		for _, c := range row {
			if len(run) > 0 && !sameStyle(c, runStyle) {
				flush()
			}
			runStyle = c
			run = append(run, c.Glyph)
		}
		flush()
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func sameStyle(a, b teletext.Cell) bool {
	return a.Background == b.Background && a.Foreground == b.Foreground && a.Bold == b.Bold
}

func cellStyle(c teletext.Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Background(c.Background)
	if c.Foreground != "" {
		s = s.Foreground(c.Foreground)
	}
	if c.Bold {
		s = s.Bold(true)
	}
	return s
}
