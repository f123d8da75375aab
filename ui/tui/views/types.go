package views

import (
	"time"

	zone "github.com/lrstanley/bubblezone"

	"ceefax/internal/teletext"
	"ceefax/ui/tui/state"
)

// Fallback terminal size before the first WindowSizeMsg arrives.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int
	Now           time.Time
	Zones         *zone.Manager
	Palette       teletext.Palette

	// Component States
	ScrollY     int
	SpinnerView string
	ChartView   string
	Counter     int
}

func (p ViewProps) size() (int, int) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
