package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ceefax/internal/output"
	"ceefax/ui/tui/state"
	"ceefax/ui/tui/styles"
)

const hourlyFooter = "[D]etails View  [M]ap View"

// HourlyLines builds the scrollable body of page 183: one row per slot,
// then the temperature chart.
func HourlyLines(s state.AppState, region int, chartView string) []string {
	if s.Data == nil || region < 0 || region >= len(s.Data.Country.Regions) {
		return nil
	}
	r := s.Data.Country.Regions[region]

	lines := []string{""}
	for _, row := range output.BuildHourly(s.Data.Reports[r.Name]) {
		lines = append(lines, "  "+row.String())
	}
	if chartView != "" {
		lines = append(lines, "", "  "+styles.RegionTitleStyle.Render("Temperature °C"))
		for _, l := range strings.Split(chartView, "\n") {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}

// HourlyView is page 183 for the region at index Region.
type HourlyView struct {
	Region int
}

func (v HourlyView) Render(s state.AppState, props ViewProps) string {
	w, h := props.size()
	bodyH := BodyHeight(h, 1)

	name := "?"
	if s.Data != nil && v.Region >= 0 && v.Region < len(s.Data.Country.Regions) {
		name = s.Data.Country.Regions[v.Region].Name
	}

	visible := window(HourlyLines(s, v.Region, props.ChartView), props.ScrollY, bodyH)
	body := lipgloss.JoinVertical(lipgloss.Left, visible...)
	return page(props,
		Header(fmt.Sprintf("P183 Hourly Forecast for %s", name), w, props.Now, true),
		body,
		hourlyFooter,
	)
}
