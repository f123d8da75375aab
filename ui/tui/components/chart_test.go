package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHourlyChartView(t *testing.T) {
	c := NewHourlyChart(40, 10)
	if c.View() != "" {
		t.Error("Expected empty chart without data")
	}

	c.SetSeries([]float64{7})
	if c.View() != "" {
		t.Error("Expected empty chart for a single point")
	}

	c.SetSeries([]float64{7, 9, 12, 10})
	if c.View() == "" {
		t.Error("Expected a chart for four points")
	}

	c.Resize(5, 2)
	if c.View() != "" {
		t.Error("Expected no chart when too small to draw")
	}
}

func TestHourlyChartSetSeriesCopies(t *testing.T) {
	temps := []float64{1, 2, 3}
	c := NewHourlyChart(40, 10)
	c.SetSeries(temps)
	temps[0] = 99

	if c.Temps[0] != 1 {
		t.Errorf("Expected series to be copied, got %v", c.Temps)
	}
}

func TestHourlyChartUpdate(t *testing.T) {
	var c Component = NewHourlyChart(40, 10)
	if c.Init() != nil {
		t.Error("Expected no initial command")
	}

	c.Update(SeriesMsg{4, 6, 5})
	chart := c.(*HourlyChart)
	if len(chart.Temps) != 3 || chart.Temps[1] != 6 {
		t.Errorf("Expected series from message, got %v", chart.Temps)
	}

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"wide terminal", 100, 92},
		{"narrow terminal keeps size", 15, 92},
		{"just wide enough", 19, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Update(tea.WindowSizeMsg{Width: tt.width, Height: 30})
			if chart.Width != tt.want || chart.Height != 10 {
				t.Errorf("Expected %dx10, got %dx%d", tt.want, chart.Width, chart.Height)
			}
		})
	}
}
