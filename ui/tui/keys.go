package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings handled by the controller before a screen
// sees the key. Per-screen keys live in state.View transitions.
type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Retry     key.Binding
	Countries key.Binding
}

var keys = keyMap{
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "quit"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Countries: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "country"),
	),
}
