package components

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
)

// SeriesMsg replaces the temperatures plotted by a HourlyChart.
type SeriesMsg []float64

// HourlyChart draws a day's temperatures as a braille line.
type HourlyChart struct {
	Temps  []float64
	Width  int
	Height int
}

func NewHourlyChart(width, height int) *HourlyChart {
	return &HourlyChart{
		Width:  width,
		Height: height,
	}
}

func (c *HourlyChart) Init() tea.Cmd {
	return nil
}

// SetSeries replaces the plotted temperatures.
func (c *HourlyChart) SetSeries(temps []float64) {
	c.Temps = append(c.Temps[:0], temps...)
}

// Update accepts a new series or a terminal resize. The chart keeps a fixed
// height and leaves an 8 column margin; terminals too narrow keep the old size.
func (c *HourlyChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SeriesMsg:
		c.SetSeries(msg)
	case tea.WindowSizeMsg:
		if w := msg.Width - 8; w > 10 {
			c.Resize(w, c.Height)
		}
	}
	return c, nil
}

func (c *HourlyChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
}

// View returns an empty string until at least two points are set.
func (c *HourlyChart) View() string {
	if len(c.Temps) < 2 || c.Width < 10 || c.Height < 4 {
		return ""
	}

	lo, hi := c.Temps[0], c.Temps[0]
	for _, t := range c.Temps {
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}
	lo = math.Floor(lo) - 2
	hi = math.Ceil(hi) + 2

	// width, height, minX, maxX, minY, maxY
	chart := linechart.New(c.Width, c.Height, 0, float64(len(c.Temps)-1), lo, hi)
	for i := 0; i < len(c.Temps)-1; i++ {
		chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Temps[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.Temps[i+1]},
		)
	}
	chart.DrawXYAxisAndLabel()
	return chart.View()
}
