package teletext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ceefax/internal/country"
	"ceefax/internal/wttr"
)

// Cell is one styled character of the output grid. An empty Foreground
// means the terminal default.
type Cell struct {
	Glyph      rune
	Background lipgloss.Color
	Foreground lipgloss.Color
	Bold       bool
}

// Grid is the rendered map, indexed [row][col].
type Grid struct {
	Cells [][]Cell
}

func (g Grid) Height() int { return len(g.Cells) }

func (g Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) (Cell, bool) {
	if y < 0 || y >= len(g.Cells) || x < 0 || x >= len(g.Cells[y]) {
		return Cell{}, false
	}
	return g.Cells[y][x], true
}

// Row returns the glyphs of row y without styling.
func (g Grid) Row(y int) string {
	if y < 0 || y >= len(g.Cells) {
		return ""
	}
	var b strings.Builder
	for _, c := range g.Cells[y] {
		b.WriteRune(c.Glyph)
	}
	return b.String()
}

// String returns every row's glyphs joined by newlines.
func (g Grid) String() string {
	rows := make([]string, len(g.Cells))
	for y := range g.Cells {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Render draws c as a half-resolution mosaic. Each output cell covers a 2x2
// block of the template; regions with a report are tinted by temperature and
// get their temperature written at the anchor.
func Render(c country.Country, reports wttr.ReportSet, p Palette) Grid {
	tmpl := make([][]rune, len(c.MapTemplate))
	for i, line := range c.MapTemplate {
		tmpl[i] = []rune(line)
	}
	at := func(x, y int) rune {
		if y < 0 || y >= len(tmpl) || x < 0 || x >= len(tmpl[y]) {
			return ' '
		}
		return tmpl[y][x]
	}

	colors := regionColors(c, reports, p)

	wo := (c.Width() + 1) / 2
	ho := (c.Height() + 1) / 2
	cells := make([][]Cell, ho)

	for y := 0; y < ho; y++ {
		cells[y] = make([]Cell, wo)
		for x := 0; x < wo; x++ {
			block := [4]rune{
				at(2*x, 2*y),
				at(2*x+1, 2*y),
				at(2*x, 2*y+1),
				at(2*x+1, 2*y+1),
			}

			var mask uint8
			for i, ch := range block {
				if ch != ' ' {
					mask |= 1 << i
				}
			}

			bg := p.Sea
			if dom, ok := dominant(block); ok {
				if col, ok := colors[dom]; ok {
					bg = col
				}
			}
			cells[y][x] = Cell{Glyph: Glyph(mask), Background: bg}
		}
	}

	for _, r := range c.Regions {
		cur, ok := reports[r.Name].Current()
		if !ok {
			continue
		}
		cx, cy := r.Anchor()
		row := cy / 2
		if row < 0 || row >= ho {
			continue
		}
		for i, ch := range []rune(cur.TempC) {
			col := cx/2 + i
			if col < 0 || col >= wo {
				continue
			}
			cells[row][col].Glyph = ch
			cells[row][col].Foreground = p.Text
			cells[row][col].Bold = true
		}
	}

	return Grid{Cells: cells}
}

// regionColors maps each reported region's marker to its temperature color.
// The first region using a marker wins.
func regionColors(c country.Country, reports wttr.ReportSet, p Palette) map[rune]lipgloss.Color {
	colors := make(map[rune]lipgloss.Color, len(c.Regions))
	seen := make(map[rune]bool, len(c.Regions))
	for _, r := range c.Regions {
		m := r.Marker()
		if seen[m] {
			continue
		}
		seen[m] = true
		if cur, ok := reports[r.Name].Current(); ok {
			colors[m] = p.TemperatureColor(wttr.ParseCelsius(cur.TempC))
		}
	}
	return colors
}

// dominant returns the most frequent non-space rune in block. Ties go to the
// rune seen first in TL, TR, BL, BR order.
func dominant(block [4]rune) (rune, bool) {
	var best rune
	bestCount := 0
	for _, ch := range block {
		if ch == ' ' {
			continue
		}
		n := 0
		for _, other := range block {
			if other == ch {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = ch, n
		}
	}
	return best, bestCount > 0
}
