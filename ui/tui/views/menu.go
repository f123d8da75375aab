package views

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"ceefax/ui/tui/state"
	"ceefax/ui/tui/styles"
)

const selectorFooter = "[M]ap View"

// CountryZoneID names the clickable entry for available country i (zero-based).
func CountryZoneID(i int) string {
	return fmt.Sprintf("country_%d", i)
}

// SelectorLines builds the numbered country list of page 100.
func SelectorLines(available []string, z *zone.Manager) []string {
	lines := []string{"", styles.RegionTitleStyle.Render("Select Country:"), ""}
	for i, name := range available {
		lines = append(lines, mark(z, CountryZoneID(i), fmt.Sprintf("  %d. %s", i+1, name)))
	}
	if len(available) == 0 {
		lines = append(lines, "  No country files found.")
	}
	return lines
}

// SelectorView is the page 100 index of available countries.
type SelectorView struct {
	Available []string
}

func (v SelectorView) Render(s state.AppState, props ViewProps) string {
	w, h := props.size()
	bodyH := BodyHeight(h, 1)

	visible := window(SelectorLines(v.Available, props.Zones), props.ScrollY, bodyH)
	return page(props,
		Header("P100 Index", w, props.Now, true),
		strings.Join(visible, "\n"),
		selectorFooter,
	)
}
