package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PathUp   key.Binding
	PathDown key.Binding
	Parent   key.Binding
	Enter    key.Binding
	Sibling  key.Binding
	Rescan   key.Binding
	Frames   key.Binding
	Info     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		PathUp: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "path up"),
		),
		PathDown: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "path down"),
		),
		Parent: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "to parent"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump to selection"),
		),
		Sibling: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next sibling"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Frames: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle frames"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "file info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
