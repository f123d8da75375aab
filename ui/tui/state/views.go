package state

import "strconv"

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionRefresh
	ActionOpenSelector
	ActionSwitchCountry
)

// Action is a side effect the controller must carry out after a transition.
type Action struct {
	Kind    ActionKind
	Country string // set for ActionSwitchCountry
}

// Env is the read-only context a transition may consult.
type Env struct {
	Regions   int // regions in the loaded country
	MaxScroll int // largest useful scroll offset for the current screen
}

// View is the screen currently shown. HandleKey is pure: it returns the next
// view and the action to perform, and never mutates the receiver.
type View interface {
	HandleKey(key string, env Env) (View, Action)
}

type Main struct{}

type Details struct {
	Scroll int
}

type Hourly struct {
	Region int // zero-based index into the country's regions
	Scroll int
}

type SelectCountry struct {
	Available []string
	Scroll    int
}

var (
	quit    = Action{Kind: ActionQuit}
	none    = Action{}
	refresh = Action{Kind: ActionRefresh}
	open    = Action{Kind: ActionOpenSelector}
)

func (v Main) HandleKey(key string, env Env) (View, Action) {
	switch key {
	case "q", "esc":
		return v, quit
	case "r":
		return v, refresh
	case "d":
		return Details{}, none
	case "c":
		return v, open
	}
	return v, none
}

func (v Details) HandleKey(key string, env Env) (View, Action) {
	switch key {
	case "q":
		return v, quit
	case "m", "esc":
		return Main{}, none
	case "r":
		return v, refresh
	case "c":
		return v, open
	case "up":
		v.Scroll = scrollUp(v.Scroll)
		return v, none
	case "down":
		v.Scroll = scrollDown(v.Scroll, env.MaxScroll)
		return v, none
	}
	if n, ok := digit(key); ok && n <= env.Regions {
		return Hourly{Region: n - 1}, none
	}
	return v, none
}

func (v Hourly) HandleKey(key string, env Env) (View, Action) {
	switch key {
	case "q":
		return v, quit
	case "d", "esc":
		return Details{}, none
	case "m":
		return Main{}, none
	case "up":
		v.Scroll = scrollUp(v.Scroll)
	case "down":
		v.Scroll = scrollDown(v.Scroll, env.MaxScroll)
	}
	return v, none
}

func (v SelectCountry) HandleKey(key string, env Env) (View, Action) {
	switch key {
	case "q":
		return v, quit
	case "m", "esc":
		return Main{}, none
	case "up":
		v.Scroll = scrollUp(v.Scroll)
		return v, none
	case "down":
		v.Scroll = scrollDown(v.Scroll, env.MaxScroll)
		return v, none
	}
	if n, ok := digit(key); ok && n <= len(v.Available) {
		return Main{}, Action{Kind: ActionSwitchCountry, Country: v.Available[n-1]}
	}
	return v, none
}

// ScrollOf returns the scroll offset of scrollable views, or 0.
func ScrollOf(v View) int {
	switch v := v.(type) {
	case Details:
		return v.Scroll
	case Hourly:
		return v.Scroll
	case SelectCountry:
		return v.Scroll
	}
	return 0
}

// SameScreen reports whether a and b show the same screen, ignoring scroll.
func SameScreen(a, b View) bool {
	switch a := a.(type) {
	case Main:
		_, ok := b.(Main)
		return ok
	case Details:
		_, ok := b.(Details)
		return ok
	case Hourly:
		h, ok := b.(Hourly)
		return ok && h.Region == a.Region
	case SelectCountry:
		_, ok := b.(SelectCountry)
		return ok
	}
	return false
}

func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	n, _ := strconv.Atoi(key)
	return n, true
}

func scrollUp(s int) int {
	if s > 0 {
		return s - 1
	}
	return 0
}

func scrollDown(s, max int) int {
	if s < max {
		return s + 1
	}
	return max
}
