package output

import (
	"fmt"
	"strconv"
	"strings"

	"ceefax/internal/country"
	"ceefax/internal/wttr"
)

// UI/view-model types (no printing here)
type Summary struct {
	Region      string
	Icon        string
	Description string
}

func (s Summary) String() string {
	return fmt.Sprintf("%s %s: %s", s.Icon, s.Region, s.Description)
}

type Detail struct {
	Index       int // 1-based position in the country's region list
	Region      string
	Icon        string
	Description string
	TempC       string
	FeelsLikeC  string
	WindDir     string
	WindKmph    string
	PrecipMM    string
}

// Lines renders the detail block, title first.
func (d Detail) Lines() []string {
	return []string{
		fmt.Sprintf("%d. -- %s --", d.Index, d.Region),
		fmt.Sprintf("   %s %s", d.Icon, d.Description),
		fmt.Sprintf("   Feels Like: %s°C", d.FeelsLikeC),
		fmt.Sprintf("   Wind: %s %s km/h", d.WindDir, d.WindKmph),
		fmt.Sprintf("   Precip: %s mm", d.PrecipMM),
	}
}

type HourlyRow struct {
	Hour        string
	TempC       string
	Icon        string
	Description string
}

func (r HourlyRow) String() string {
	return fmt.Sprintf("%s - %s°C - %s %s", r.Hour, r.TempC, r.Icon, r.Description)
}

// BuildSummaries lists one line per reported region, in region order.
func BuildSummaries(c country.Country, reports wttr.ReportSet) []Summary {
	var out []Summary
	for _, r := range c.Regions {
		cur, ok := reports[r.Name].Current()
		if !ok {
			continue
		}
		desc := cur.Description()
		out = append(out, Summary{Region: r.Name, Icon: wttr.Icon(desc), Description: desc})
	}
	return out
}

// BuildDetails converts reports into detail blocks. Regions without a
// report are skipped but keep their index so hotkeys stay stable.
func BuildDetails(c country.Country, reports wttr.ReportSet) []Detail {
	var out []Detail
	for i, r := range c.Regions {
		cur, ok := reports[r.Name].Current()
		if !ok {
			continue
		}
		desc := cur.Description()
		out = append(out, Detail{
			Index:       i + 1,
			Region:      r.Name,
			Icon:        wttr.Icon(desc),
			Description: desc,
			TempC:       cur.TempC,
			FeelsLikeC:  cur.FeelsLikeC,
			WindDir:     cur.Winddir16Point,
			WindKmph:    cur.WindspeedKmph,
			PrecipMM:    cur.PrecipMM,
		})
	}
	return out
}

// BuildHourly lists the first forecast day's slots.
func BuildHourly(r *wttr.Report) []HourlyRow {
	slots := r.Today()
	out := make([]HourlyRow, 0, len(slots))
	for _, h := range slots {
		desc := h.Description()
		out = append(out, HourlyRow{
			Hour:        FormatHour(h.Time),
			TempC:       h.TempC,
			Icon:        wttr.Icon(desc),
			Description: desc,
		})
	}
	return out
}

// HourlyTemperatures returns the first day's temperatures for charting.
func HourlyTemperatures(r *wttr.Report) []float64 {
	slots := r.Today()
	out := make([]float64, 0, len(slots))
	for _, h := range slots {
		out = append(out, float64(wttr.ParseCelsius(h.TempC)))
	}
	return out
}

// FormatHour turns wttr's HHMM string ("0", "300", "1500") into "HH:00".
func FormatHour(t string) string {
	n, err := strconv.Atoi(strings.TrimSpace(t))
	if err != nil {
		n = 0
	}
	return fmt.Sprintf("%02d:00", n/100)
}
