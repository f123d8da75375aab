package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"ceefax/internal/fetch"
	"ceefax/internal/output"
	"ceefax/internal/teletext"
)

const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
)

// Print writes a one-shot report of data to w: summaries, the map and the
// per-region details. With color false no escape sequences are emitted.
func Print(w io.Writer, data *fetch.AppData, grid teletext.Grid, color bool) {
	if data == nil {
		return
	}
	c := data.Country

	title := fmt.Sprintf("■ CEEFAX WEATHER: %s", strings.ToUpper(c.Name))
	fmt.Fprintln(w, paint(color, colorCyan, title))

	for _, s := range output.BuildSummaries(c, data.Reports) {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintln(w)

	for _, row := range grid.Cells {
		fmt.Fprintln(w, Row(row, color))
	}
	fmt.Fprintln(w)

	for _, d := range output.BuildDetails(c, data.Reports) {
		lines := d.Lines()
		fmt.Fprintln(w, paint(color, colorBold, lines[0]))
		for _, l := range lines[1:] {
			fmt.Fprintln(w, l)
		}
	}

	if c.FooterText != "" {
		fmt.Fprintf(w, "\n%s\n", paint(color, colorCyan, c.FooterText))
	}
}

// Row renders one grid row as 24-bit ANSI text.
func Row(cells []teletext.Cell, color bool) string {
	var b strings.Builder
	for _, cell := range cells {
		if !color {
			b.WriteRune(cell.Glyph)
			continue
		}
		b.WriteString(background(cell.Background))
		b.WriteString(foreground(cell.Foreground))
		if cell.Bold {
			b.WriteString(colorBold)
		}
		b.WriteRune(cell.Glyph)
		b.WriteString(colorReset)
	}
	return b.String()
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + colorReset
}

func foreground(c lipgloss.Color) string {
	r, g, b, ok := rgb(c)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

func background(c lipgloss.Color) string {
	r, g, b, ok := rgb(c)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

func rgb(c lipgloss.Color) (uint8, uint8, uint8, bool) {
	if c == "" {
		return 0, 0, 0, false
	}
	hex, err := colorful.Hex(string(c))
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b := hex.RGB255()
	return r, g, b, true
}
