package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ceefax/internal/config"
	"ceefax/internal/country"
	"ceefax/internal/wttr"
	"ceefax/ui/tui/components"
	"ceefax/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
)

// MockCatalog for testing
type MockCatalog struct {
	Countries map[string]country.Country
	ListErr   error
}

func (m MockCatalog) Load(name string) (country.Country, error) {
	c, ok := m.Countries[name]
	if !ok {
		return country.Country{}, errors.New("country " + name + " not found")
	}
	c.Name = name
	return c, nil
}

func (m MockCatalog) ListAvailable() ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return []string{"germany", "uk"}, nil
}

func testCountry() country.Country {
	return country.Country{
		Name:        "uk",
		MapTemplate: []string{"  AA", " AABB", "BB"},
		Regions: []country.Region{
			{Name: "North", City: "Aberdeen", Char: "A", TempPos: []int{2, 0}},
			{Name: "South", City: "Brighton", Char: "B", TempPos: []int{0, 2}},
		},
		FooterText: "footer",
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, provider wttr.Provider) (*MainModel, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)}
	cat := MockCatalog{Countries: map[string]country.Country{
		"uk":      testCountry(),
		"germany": testCountry(),
	}}
	m := InitialModel(config.DefaultConfig(), provider, cat, testCountry())
	m.now = clock.Now
	t.Cleanup(m.zones.Close)
	return &m, clock
}

// waitFor pumps frames until the model reaches want.
func waitFor(t *testing.T, m *MainModel, want state.Phase) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.Update(FrameMsg(time.Now()))
		if m.state.Phase == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected phase %v, still %v (err %q)", want, m.state.Phase, m.state.Err)
}

func send(m *MainModel, keys ...string) (*MainModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(key(k))
		m = updated.(*MainModel)
	}
	return m, cmd
}

func loadedModel(t *testing.T) (*MainModel, *wttr.MockProvider, *fakeClock) {
	t.Helper()
	provider := &wttr.MockProvider{Payload: wttr.SamplePayload("12", "Sunny")}
	m, clock := newTestModel(t, provider)
	m.Init()
	waitFor(t, m, state.PhaseLoaded)
	return m, provider, clock
}

func TestInitialFetchLoads(t *testing.T) {
	m, provider, clock := loadedModel(t)

	if got := provider.Calls(); len(got) != 2 || got[0] != "Aberdeen" || got[1] != "Brighton" {
		t.Errorf("Expected cities fetched in region order, got %v", got)
	}
	if !m.state.UpdatedAt.Equal(clock.t) {
		t.Errorf("Expected UpdatedAt %v, got %v", clock.t, m.state.UpdatedAt)
	}
	if len(m.state.Data.Reports) != 2 {
		t.Errorf("Expected 2 reports, got %d", len(m.state.Data.Reports))
	}

	out := m.View()
	if !strings.Contains(out, "P181 CEEFAX 181") {
		t.Errorf("Expected main page header, got:\n%s", out)
	}
	if !strings.Contains(out, "Updated: 15:04:05") {
		t.Errorf("Expected update time in footer, got:\n%s", out)
	}
}

func TestLoadingIgnoresNavigation(t *testing.T) {
	provider := &wttr.MockProvider{Payload: wttr.SamplePayload("12", "Sunny")}
	m, _ := newTestModel(t, provider)

	m, _ = send(m, "d", "c", "r")
	if _, ok := m.view.(state.Main); !ok {
		t.Errorf("Expected Main view while loading, got %#v", m.view)
	}
	if m.state.Phase != state.PhaseLoading {
		t.Errorf("Expected Loading phase, got %v", m.state.Phase)
	}
	if !strings.Contains(m.View(), "SEARCHING...") {
		t.Error("Expected loading page")
	}

	m, cmd := send(m, "q")
	if !m.quitting || cmd == nil {
		t.Error("Expected q to quit while loading")
	}
}

func TestLoadingCounterWraps(t *testing.T) {
	tests := []struct{ in, want int }{
		{100, 101},
		{500, 501},
		{898, 899},
		{899, 100},
	}
	for _, tt := range tests {
		if got := nextPage(tt.in); got != tt.want {
			t.Errorf("nextPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	provider := &wttr.MockProvider{Payload: wttr.SamplePayload("12", "Sunny")}
	m, _ := newTestModel(t, provider)
	m.Update(FrameMsg(time.Now()))
	if m.counter != 101 {
		t.Errorf("Expected counter 101 after one frame, got %d", m.counter)
	}
	if !strings.Contains(m.View(), "P101 SEARCHING...") {
		t.Error("Expected counter in loading header")
	}
}

func TestScreenNavigation(t *testing.T) {
	m, _, _ := loadedModel(t)

	m, _ = send(m, "d")
	if _, ok := m.view.(state.Details); !ok {
		t.Fatalf("Expected Details view, got %#v", m.view)
	}
	if !strings.Contains(m.View(), "P182 Weather Details") {
		t.Error("Expected details header")
	}

	m, _ = send(m, "2")
	h, ok := m.view.(state.Hourly)
	if !ok || h.Region != 1 {
		t.Fatalf("Expected Hourly for region 1, got %#v", m.view)
	}
	if !strings.Contains(m.View(), "P183 Hourly Forecast for South") {
		t.Error("Expected hourly header")
	}
	if chart := m.chart.(*components.HourlyChart); len(chart.Temps) != 3 {
		t.Errorf("Expected chart fed with 3 temperatures, got %v", chart.Temps)
	}

	m, _ = send(m, "esc")
	if _, ok := m.view.(state.Details); !ok {
		t.Errorf("Expected esc to return to Details, got %#v", m.view)
	}
	m, _ = send(m, "m")
	if _, ok := m.view.(state.Main); !ok {
		t.Errorf("Expected m to return to Main, got %#v", m.view)
	}

	m, cmd := send(m, "esc")
	if !m.quitting || cmd == nil {
		t.Error("Expected esc on Main to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestRefreshDropsOlderResult(t *testing.T) {
	m, provider, _ := loadedModel(t)

	m, _ = send(m, "r")
	if m.state.Phase != state.PhaseLoading {
		t.Fatalf("Expected Loading after refresh, got %v", m.state.Phase)
	}
	first := m.results

	m.startFetch()
	if m.results == first {
		t.Fatal("Expected a new result channel")
	}
	// Drain the superseded fetch; it must never reach the model.
	for range first {
	}
	waitFor(t, m, state.PhaseLoaded)
	if got := len(provider.Calls()); got != 6 {
		t.Errorf("Expected 3 complete fetches, got %d calls", got)
	}
}

func TestStaleDataRefreshesBeforeDraw(t *testing.T) {
	m, provider, clock := loadedModel(t)
	interval := m.config.RefreshInterval

	clock.t = clock.t.Add(interval)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.state.Phase != state.PhaseLoaded {
		t.Fatalf("Expected Loaded at exactly the interval, got %v", m.state.Phase)
	}

	clock.t = clock.t.Add(time.Second)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.state.Phase != state.PhaseLoading {
		t.Fatalf("Expected Loading once past the interval, got %v", m.state.Phase)
	}
	if !strings.Contains(m.View(), "SEARCHING...") {
		t.Error("Expected the next draw to be the loading page")
	}

	waitFor(t, m, state.PhaseLoaded)
	if !m.state.LastFetch.Equal(clock.t) {
		t.Errorf("Expected refresh clock reset to %v, got %v", clock.t, m.state.LastFetch)
	}
	if got := len(provider.Calls()); got != 4 {
		t.Errorf("Expected a second full fetch, got %d calls", got)
	}
}

func TestFetchErrorAndRetry(t *testing.T) {
	provider := &wttr.MockProvider{
		Payload: wttr.SamplePayload("12", "Sunny"),
		Errs:    map[string]error{"Brighton": errors.New("boom")},
	}
	m, _ := newTestModel(t, provider)
	m.Init()
	waitFor(t, m, state.PhaseError)

	if !strings.Contains(m.state.Err, "Brighton") || !strings.Contains(m.state.Err, "boom") {
		t.Errorf("Expected wrapped error, got %q", m.state.Err)
	}
	out := m.View()
	if !strings.Contains(out, "P404 ERROR") || !strings.Contains(out, "boom") {
		t.Errorf("Expected error page, got:\n%s", out)
	}

	m, _ = send(m, "d")
	if m.state.Phase != state.PhaseError {
		t.Error("Expected navigation keys ignored on the error page")
	}

	delete(provider.Errs, "Brighton")
	m, _ = send(m, "r")
	if m.state.Phase != state.PhaseLoading {
		t.Fatalf("Expected retry to start loading, got %v", m.state.Phase)
	}
	waitFor(t, m, state.PhaseLoaded)
}

func TestSelectCountrySwitches(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"uk", "germany"} {
		body := "map_template = [\"AA\"]\n\n[[regions]]\nname = \"" + name + " region\"\ncity = \"" + name + "-city\"\nchar = \"A\"\ntemp_pos = [0, 0]\n"
		if err := os.WriteFile(filepath.Join(dir, name+".toml"), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	loader := country.NewLoader(dir)
	uk, err := loader.Load("uk")
	if err != nil {
		t.Fatal(err)
	}

	provider := &wttr.MockProvider{Payload: wttr.SamplePayload("12", "Sunny")}
	m := InitialModel(config.DefaultConfig(), provider, loader, uk)
	t.Cleanup(m.zones.Close)
	mp := &m
	mp.Init()
	waitFor(t, mp, state.PhaseLoaded)

	mp, _ = send(mp, "c")
	sel, ok := mp.view.(state.SelectCountry)
	if !ok {
		t.Fatalf("Expected selector, got %#v", mp.view)
	}
	if len(sel.Available) != 2 || sel.Available[0] != "germany" || sel.Available[1] != "uk" {
		t.Fatalf("Expected [germany uk], got %v", sel.Available)
	}
	if !strings.Contains(mp.View(), "P100 Index") {
		t.Error("Expected index page")
	}

	mp, cmd := send(mp, "1")
	if mp.quitting || cmd != nil {
		t.Fatal("Expected switch without exiting")
	}
	if mp.country.Name != "germany" || mp.config.Country != "germany" {
		t.Errorf("Expected germany loaded, got %q / %q", mp.country.Name, mp.config.Country)
	}
	if _, ok := mp.view.(state.Main); !ok {
		t.Errorf("Expected Main after switching, got %#v", mp.view)
	}
	waitFor(t, mp, state.PhaseLoaded)
	calls := provider.Calls()
	if calls[len(calls)-1] != "germany-city" {
		t.Errorf("Expected germany fetched last, got %v", calls)
	}
}

func TestSelectCountryFromErrorPage(t *testing.T) {
	provider := &wttr.MockProvider{Errs: map[string]error{"Aberdeen": errors.New("down")}}
	m, _ := newTestModel(t, provider)
	m.Init()
	waitFor(t, m, state.PhaseError)

	m, _ = send(m, "c")
	if _, ok := m.view.(state.SelectCountry); !ok {
		t.Fatalf("Expected selector from error page, got %#v", m.view)
	}
	m, _ = send(m, "down", "esc")
	if _, ok := m.view.(state.Main); !ok {
		t.Errorf("Expected selector to take keys during error, got %#v", m.view)
	}
}

func TestSelectorErrors(t *testing.T) {
	provider := &wttr.MockProvider{Payload: wttr.SamplePayload("12", "Sunny")}
	m, _ := newTestModel(t, provider)
	m.catalog = MockCatalog{ListErr: errors.New("no templates")}
	m.Init()
	waitFor(t, m, state.PhaseLoaded)

	m, _ = send(m, "c")
	if m.state.Phase != state.PhaseError || m.state.Err != "no templates" {
		t.Errorf("Expected list failure on error page, got %v %q", m.state.Phase, m.state.Err)
	}

	m.catalog = MockCatalog{}
	m.setView(state.SelectCountry{Available: []string{"atlantis"}})
	m, _ = send(m, "1")
	if m.state.Phase != state.PhaseError {
		t.Errorf("Expected load failure on error page, got %v", m.state.Phase)
	}
	if m.country.Name != "uk" {
		t.Errorf("Expected country unchanged, got %q", m.country.Name)
	}
}

func TestScrollAnimation(t *testing.T) {
	m, _, _ := loadedModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})

	m, _ = send(m, "d", "down", "down", "down")
	d, ok := m.view.(state.Details)
	if !ok || d.Scroll != 3 {
		t.Fatalf("Expected Details scrolled to 3, got %#v", m.view)
	}

	if m.animScroll != 0 {
		t.Errorf("Expected initial animScroll 0, got %f", m.animScroll)
	}

	m.Update(FrameMsg(time.Now()))
	if m.animScroll <= 0 || m.animScroll >= 3 {
		t.Errorf("Expected animScroll between 0 and 3 after one frame, got %f", m.animScroll)
	}
	for i := 0; i < 100; i++ {
		m.Update(FrameMsg(time.Now()))
	}
	if diff := m.animScroll - 3; diff > 0.05 || diff < -0.05 {
		t.Errorf("Expected animScroll to settle at 3, got %f", m.animScroll)
	}

	m, _ = send(m, "m")
	if m.animScroll != 0 {
		t.Errorf("Expected scroll reset on screen change, got %f", m.animScroll)
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	provider := &wttr.MockProvider{Payload: wttr.SamplePayload("12", "Sunny")}
	m, _ := newTestModel(t, provider)
	m.setView(state.SelectCountry{Available: []string{"uk"}})

	m, cmd := send(m, "ctrl+c")
	if !m.quitting || cmd == nil {
		t.Error("Expected ctrl+c to quit from the selector")
	}
}
