package views

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"ceefax/internal/output"
	"ceefax/ui/tui/state"
	"ceefax/ui/tui/styles"
)

const detailsFooter = "Select number for [H]ourly forecast, [M]ap View"

// RegionZoneID names the clickable title of region i (zero-based).
func RegionZoneID(i int) string {
	return fmt.Sprintf("region_%d", i)
}

// DetailsLines builds the scrollable body of page 182.
func DetailsLines(s state.AppState, z *zone.Manager) []string {
	if s.Data == nil {
		return nil
	}
	lines := []string{""}
	for _, d := range output.BuildDetails(s.Data.Country, s.Data.Reports) {
		block := d.Lines()
		lines = append(lines, mark(z, RegionZoneID(d.Index-1), styles.RegionTitleStyle.Render(block[0])))
		lines = append(lines, block[1:]...)
		lines = append(lines, "")
	}
	return lines
}

// DetailsView is page 182: conditions for every region.
type DetailsView struct{}

func (v DetailsView) Render(s state.AppState, props ViewProps) string {
	w, h := props.size()
	bodyH := BodyHeight(h, 1)

	visible := window(DetailsLines(s, props.Zones), props.ScrollY, bodyH)
	return page(props,
		Header("P182 Weather Details", w, props.Now, true),
		strings.Join(visible, "\n"),
		detailsFooter,
	)
}
