package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Smash     key.Binding
	Undo      key.Binding
	Reset     key.Binding
	AddBox    key.Binding
	RemoveBox key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Smash, k.Undo, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Smash},
		{k.Undo, k.Reset},
		{k.AddBox, k.RemoveBox, k.SpeedUp, k.SpeedDown},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev box"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next box"),
		),
		Smash: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "smash"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		AddBox: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more boxes"),
		),
		RemoveBox: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer boxes"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("]", "."),
			key.WithHelp("]", "faster ferrets"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("[", ","),
			key.WithHelp("[", "slower ferrets"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
