package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"ceefax/ui/tui/styles"
)

// HeaderLines is the height of every page header.
const HeaderLines = 1

// BodyHeight is what remains for the body once the header and footerLines are drawn.
func BodyHeight(height, footerLines int) int {
	if height <= 0 {
		height = DefaultHeight
	}
	h := height - HeaderLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

// MaxScroll is the largest offset that still fills a window of height lines.
func MaxScroll(total, height int) int {
	if total > height {
		return total - height
	}
	return 0
}

// Header draws the black page banner: label at left, date and clock at right.
func Header(label string, width int, now time.Time, bold bool) string {
	date := strings.ToUpper(now.Format("Mon 02 Jan"))
	clock := now.Format("15:04/05")

	labelStyle := styles.HeaderStyle
	if bold {
		labelStyle = styles.HeaderLabelStyle
	}

	pad := width - lipgloss.Width(label) - len(date) - 3 - len(clock)
	if pad < 1 {
		pad = 1
	}
	return labelStyle.Render(label) +
		styles.HeaderStyle.Render(strings.Repeat(" ", pad)+date+"   ") +
		styles.ClockStyle.Render(clock)
}

// box renders content into exactly w x h cells of style.
func box(style lipgloss.Style, w, h int, content string) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return style.Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(content)
}

// page stacks header, a fixed-height body and footer lines.
func page(props ViewProps, header, body string, footer ...string) string {
	w, h := props.size()
	parts := []string{header, box(styles.BodyStyle, w, BodyHeight(h, len(footer)), body)}
	for _, f := range footer {
		parts = append(parts, box(styles.FooterStyle, w, 1, f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// window returns the slice of lines visible at scrollY, clamped so the
// window never runs past the end.
func window(lines []string, scrollY, height int) []string {
	total := len(lines)
	if scrollY > total-height {
		scrollY = total - height
	}
	if scrollY < 0 {
		scrollY = 0
	}
	end := scrollY + height
	if end > total {
		end = total
	}
	return lines[scrollY:end]
}

func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}
