package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	Fire   key.Binding
	Left   key.Binding
	Right  key.Binding
	Center key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Left, k.Right, k.Center, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Quit},
		{k.Left, k.Right, k.Center},
	}
}

// DefaultKeyMap returns the default key bindings. Left and right step the
// tilt one tier at a time, like tipping the board further.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "fire"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "tilt left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "tilt right"),
		),
		Center: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
