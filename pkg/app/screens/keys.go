package screens

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Grid     key.Binding
	Column   key.Binding
	Infinite key.Binding
	Cycle    key.Binding
	Prev     key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Bottom   key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Grid: key.NewBinding(
			key.WithKeys("1", "g"),
			key.WithHelp("1/g", "grid"),
		),
		Column: key.NewBinding(
			key.WithKeys("2", "c"),
			key.WithHelp("2/c", "column"),
		),
		Infinite: key.NewBinding(
			key.WithKeys("3", "i"),
			key.WithHelp("3/i", "infinite"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Prev, k.Next, k.Down, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grid, k.Column, k.Infinite, k.Cycle},
		{k.Prev, k.Next, k.Refresh},
		{k.Up, k.Down, k.Bottom},
		{k.Help, k.Quit},
	}
}
