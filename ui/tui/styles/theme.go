package styles

import (
	"github.com/charmbracelet/lipgloss"

	"ceefax/internal/teletext"
)

var (
	Page   = teletext.Blue
	Banner = teletext.Black
	Ink    = teletext.White
	Accent = teletext.Yellow

	// Body text: white on teletext blue.
	BodyStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Background(Page)

	TitleStyle = BodyStyle.
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Background(Banner)

	HeaderLabelStyle = HeaderStyle.
				Bold(true)

	ClockStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Background(Banner)

	RegionTitleStyle = BodyStyle.
				Foreground(Accent).
				Bold(true)

	FooterStyle = BodyStyle
)
