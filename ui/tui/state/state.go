package state

import (
	"time"

	"ceefax/internal/fetch"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// AppState holds the current snapshot of the fetch lifecycle
type AppState struct {
	Phase     Phase
	Data      *fetch.AppData
	UpdatedAt time.Time // when the current Data arrived
	LastFetch time.Time // when the refresh clock was last reset
	Err       string
}

// Loaded reports whether a complete snapshot is on screen.
func (s AppState) Loaded() bool {
	return s.Phase == PhaseLoaded && s.Data != nil
}

// Stale reports whether a loaded snapshot has outlived interval at now.
func (s AppState) Stale(now time.Time, interval time.Duration) bool {
	return s.Loaded() && now.Sub(s.LastFetch) > interval
}

// Regions is the number of regions in the loaded country, or 0.
func (s AppState) Regions() int {
	if s.Data == nil {
		return 0
	}
	return len(s.Data.Country.Regions)
}
