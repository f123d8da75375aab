package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ceefax/internal/output"
	"ceefax/internal/teletext"
	"ceefax/ui/tui/state"
	"ceefax/ui/tui/styles"
)

const (
	mainFooterLines = 2
	titleLines      = 8
	summaryLines    = 5
)

// TitleArt is drawn at the top of the left column.
var TitleArt = []string{
	"█ █ █ █▀▀ ▄▀█ ▀█▀ █ █ █▀▀ █▀█",
	"▀▄▀▄▀ ██▄ █▀█  █  █▀█ ██▄ █▀▄",
}

// MainView is page 181: title and text on the left, summaries and map on the right.
type MainView struct{}

func (v MainView) Render(s state.AppState, props ViewProps) string {
	w, h := props.size()
	if s.Data == nil {
		return page(props, Header("P181 CEEFAX 181", w, props.Now, false), "")
	}
	data := s.Data
	c := data.Country

	bodyH := BodyHeight(h, mainFooterLines)
	leftW := w * 45 / 100
	rightW := w - leftW

	title := []string{""}
	for _, line := range TitleArt {
		title = append(title, " "+line)
	}
	title = append(title, "", " "+strings.ToUpper(c.Name)+" WEATHER")

	leftText := c.LeftText
	if len(leftText) == 0 {
		leftText = []string{fmt.Sprintf("%d regions reporting.", len(data.Reports))}
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		box(styles.TitleStyle, leftW, min(titleLines, bodyH), strings.Join(title, "\n")),
		box(styles.BodyStyle.PaddingLeft(1), leftW, bodyH-titleLines, strings.Join(leftText, "\n")),
	)

	var summaries []string
	for _, sm := range output.BuildSummaries(c, data.Reports) {
		summaries = append(summaries, sm.String())
	}
	palette := props.Palette
	if palette == (teletext.Palette{}) {
		palette = teletext.DefaultPalette()
	}
	grid := teletext.Render(c, data.Reports, palette)

	right := lipgloss.JoinVertical(lipgloss.Left,
		box(styles.BodyStyle, rightW, min(summaryLines, bodyH), strings.Join(summaries, "\n")),
		box(styles.BodyStyle, rightW, bodyH-summaryLines, RenderGrid(grid)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	keys := fmt.Sprintf("[C]ountry [D]etails [R]efresh      Updated: %s", s.UpdatedAt.Format("15:04:05"))
	return page(props, Header("P181 CEEFAX 181", w, props.Now, false), body, keys, c.FooterText)
}
