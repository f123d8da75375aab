package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ceefax/ui/tui/state"
	"ceefax/ui/tui/styles"
)

const errorFooter = "[R]etry  [C]ountry  [Q]uit"

// LoadingView shows the page counter ticking while a fetch runs.
type LoadingView struct{}

func (v LoadingView) Render(s state.AppState, props ViewProps) string {
	w, h := props.size()
	bodyH := BodyHeight(h, 0)

	msg := "Searching..."
	if props.SpinnerView != "" {
		msg = props.SpinnerView + " " + msg
	}
	body := lipgloss.Place(w, bodyH, lipgloss.Center, lipgloss.Center,
		styles.TitleStyle.Render(msg),
		lipgloss.WithWhitespaceBackground(styles.Page),
	)
	return page(props, Header(fmt.Sprintf("P%d SEARCHING...", props.Counter), w, props.Now, true), body)
}

// ErrorView is page 404: the fetch error and how to recover.
type ErrorView struct{}

func (v ErrorView) Render(s state.AppState, props ViewProps) string {
	w, _ := props.size()
	text := styles.BodyStyle.Padding(1, 2).Width(w).Render(s.Err)
	return page(props, Header("P404 ERROR", w, props.Now, true), text, errorFooter)
}
