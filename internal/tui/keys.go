package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings
type KeyMap struct {
	Tab         key.Binding
	ShiftTab    key.Binding
	Quit        key.Binding
	Help        key.Binding
	Next        key.Binding
	Prev        key.Binding
	ViewMode    key.Binding
	PrevPeriod  key.Binding
	NextPeriod  key.Binding
	Today       key.Binding
	Filters     key.Binding
	Edit        key.Binding
	Add         key.Binding
	Grab        key.Binding
	ResizeStart key.Binding
	ResizeEnd   key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Next: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "next booking"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "prev booking"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "day/week/month"),
		),
		PrevPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev period"),
		),
		NextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next period"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit booking"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add booking"),
		),
		Grab: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grab/move"),
		),
		ResizeStart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resize start"),
		),
		ResizeEnd: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "resize end"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "row down"),
		),
	}
}
