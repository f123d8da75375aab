package tui

import (
	"math"
	"time"

	"ceefax/internal/config"
	"ceefax/internal/country"
	"ceefax/internal/fetch"
	"ceefax/internal/log"
	"ceefax/internal/output"
	"ceefax/internal/teletext"
	"ceefax/internal/wttr"
	"ceefax/ui/tui/components"
	"ceefax/ui/tui/state"
	"ceefax/ui/tui/styles"
	"ceefax/ui/tui/views"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
)

const (
	firstPage = 100
	pageSpan  = 800
)

// Catalog resolves country templates by name.
type Catalog interface {
	Load(name string) (country.Country, error)
	ListAvailable() ([]string, error)
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	worker  *fetch.Worker
	catalog Catalog
	config  config.Config
	country country.Country
	state   state.AppState
	view    state.View
	results <-chan fetch.Result

	spinner    spinner.Model
	chart      components.Component
	zones      *zone.Manager
	spring     harmonica.Spring
	animScroll float64
	velocity   float64 // Physics velocity
	counter    int

	now      func() time.Time
	quitting bool
	width    int
	height   int
}

// Messages
type FrameMsg time.Time

func InitialModel(cfg config.Config, provider wttr.Provider, catalog Catalog, c country.Country) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TitleStyle

	fps := 20
	if cfg.FramePeriod > 0 {
		fps = int(time.Second / cfg.FramePeriod)
	}

	return MainModel{
		worker:  fetch.NewWorker(provider, 0),
		catalog: catalog,
		config:  cfg,
		country: c,
		view:    state.Main{},
		spinner: s,
		chart:   components.NewHourlyChart(40, 10),
		zones:   zone.New(),
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.9),
		counter: firstPage,
		now:     time.Now,
		state:   state.AppState{Phase: state.PhaseLoading},
	}
}

func (m *MainModel) Init() tea.Cmd {
	m.startFetch()
	return tea.Batch(
		m.spinner.Tick,
		m.chart.Init(),
		frameCmd(m.config.FramePeriod),
	)
}

// Commands
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// nextPage advances the loading page counter through 100..899.
func nextPage(c int) int {
	return firstPage + (c+1-firstPage)%pageSpan
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Stale(m.now(), m.config.RefreshInterval) {
		log.Infow("data stale, refreshing", "country", m.country.Name)
		m.startFetch()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case FrameMsg:
		return m.handleFrameMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

// startFetch replaces the result channel, so any fetch still in flight is
// dropped when it completes.
func (m *MainModel) startFetch() {
	m.results = m.worker.Start(m.country)
	m.state.Phase = state.PhaseLoading
	m.state.Err = ""
}

func (m *MainModel) poll() {
	select {
	case res, ok := <-m.results:
		m.results = nil
		if !ok {
			return
		}
		now := m.now()
		if res.Err != nil {
			m.state.Phase = state.PhaseError
			m.state.Err = res.Err.Error()
			return
		}
		m.state.Phase = state.PhaseLoaded
		m.state.Data = res.Data
		m.state.UpdatedAt = now
		m.state.LastFetch = now
		m.syncChart()
	default:
	}
}

func (m *MainModel) fail(err error) {
	log.Errorw("action failed", "country", m.country.Name, "error", err)
	m.state.Phase = state.PhaseError
	m.state.Err = err.Error()
	m.results = nil
}

func (m *MainModel) handleFrameMsg(msg FrameMsg) (tea.Model, tea.Cmd) {
	m.poll()
	if m.state.Phase == state.PhaseLoading {
		m.counter = nextPage(m.counter)
	}
	m.animScroll, m.velocity = m.spring.Update(m.animScroll, m.velocity, float64(state.ScrollOf(m.view)))
	return m, frameCmd(m.config.FramePeriod)
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQuit) {
		return m.quit()
	}

	if _, ok := m.view.(state.SelectCountry); ok {
		return m.transition(msg.String())
	}

	switch m.state.Phase {
	case state.PhaseLoading:
		if key.Matches(msg, keys.Quit) {
			return m.quit()
		}
		return m, nil
	case state.PhaseError:
		switch {
		case key.Matches(msg, keys.Retry):
			return m.apply(state.Action{Kind: state.ActionRefresh})
		case key.Matches(msg, keys.Countries):
			return m.apply(state.Action{Kind: state.ActionOpenSelector})
		case key.Matches(msg, keys.Quit):
			return m.quit()
		}
		return m, nil
	}
	return m.transition(msg.String())
}

func (m *MainModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *MainModel) env() state.Env {
	total := views.ContentHeight(m.view, m.state, m.chart.View())
	return state.Env{
		Regions:   m.state.Regions(),
		MaxScroll: views.MaxScroll(total, views.BodyHeight(m.height, 1)),
	}
}

func (m *MainModel) transition(k string) (tea.Model, tea.Cmd) {
	next, action := m.view.HandleKey(k, m.env())
	m.setView(next)
	return m.apply(action)
}

func (m *MainModel) setView(next state.View) {
	if !state.SameScreen(m.view, next) {
		m.animScroll = 0
		m.velocity = 0
	}
	m.view = next
	m.syncChart()
}

func (m *MainModel) syncChart() {
	h, ok := m.view.(state.Hourly)
	if !ok || m.state.Data == nil || h.Region >= len(m.state.Data.Country.Regions) {
		return
	}
	r := m.state.Data.Country.Regions[h.Region]
	m.chart.Update(components.SeriesMsg(output.HourlyTemperatures(m.state.Data.Reports[r.Name])))
}

func (m *MainModel) apply(a state.Action) (tea.Model, tea.Cmd) {
	switch a.Kind {
	case state.ActionQuit:
		return m.quit()

	case state.ActionRefresh:
		m.startFetch()

	case state.ActionOpenSelector:
		names, err := m.catalog.ListAvailable()
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.setView(state.SelectCountry{Available: names})

	case state.ActionSwitchCountry:
		c, err := m.catalog.Load(a.Country)
		if err != nil {
			m.setView(state.Main{})
			m.fail(err)
			return m, nil
		}
		log.Infow("country switched", "from", m.country.Name, "to", c.Name)
		m.country = c
		m.config = m.config.WithCountry(c.Name)
		m.state.Data = nil
		m.setView(state.Main{})
		m.startFetch()
	}
	return m, nil
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	_, cmd := m.chart.Update(msg)
	return m, cmd
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	sel, selecting := m.view.(state.SelectCountry)
	if !selecting && m.state.Phase != state.PhaseLoaded {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.transition("up")
	case tea.MouseButtonWheelDown:
		return m.transition("down")
	}
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	if selecting {
		for i, name := range sel.Available {
			if m.zones.Get(views.CountryZoneID(i)).InBounds(msg) {
				return m.apply(state.Action{Kind: state.ActionSwitchCountry, Country: name})
			}
		}
		return m, nil
	}
	if _, ok := m.view.(state.Details); ok {
		for i := 0; i < m.state.Regions(); i++ {
			if m.zones.Get(views.RegionZoneID(i)).InBounds(msg) {
				m.setView(state.Hourly{Region: i})
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *MainModel) props() views.ViewProps {
	return views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		Now:         m.now(),
		Zones:       m.zones,
		Palette:     teletext.DefaultPalette(),
		ScrollY:     int(math.Round(m.animScroll)),
		SpinnerView: m.spinner.View(),
		ChartView:   m.chart.View(),
		Counter:     m.counter,
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}
	return m.zones.Scan(m.render())
}

func (m *MainModel) render() string {
	props := m.props()
	if sel, ok := m.view.(state.SelectCountry); ok {
		return views.RenderSelector(m.state, sel.Available, props)
	}

	switch m.state.Phase {
	case state.PhaseLoading:
		return views.RenderLoading(m.state, props)
	case state.PhaseError:
		return views.RenderError(m.state, props)
	}

	switch v := m.view.(type) {
	case state.Details:
		return views.RenderDetails(m.state, props)
	case state.Hourly:
		return views.RenderHourly(m.state, v.Region, props)
	default:
		return views.RenderMain(m.state, props)
	}
}

// Start runs the TUI until the user quits. Bubble Tea restores the terminal
// on every exit path, including recovered panics.
func Start(cfg config.Config, provider wttr.Provider, catalog Catalog, c country.Country) error {
	m := InitialModel(cfg, provider, catalog, c)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(&m, opts...)
	_, err := p.Run()
	m.zones.Close()
	return err
}
