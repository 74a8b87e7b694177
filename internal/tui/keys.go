package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Close    key.Binding
	Menu     key.Binding
	Top      key.Binding
	Tab      key.Binding
	Back     key.Binding
	Forward  key.Binding
	PrevCat  key.Binding
	NextCat  key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Top: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "top"),
		),
		Tab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "go to view"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "alt+left"),
			key.WithHelp("b", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f", "alt+right"),
			key.WithHelp("f", "forward"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev category"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next category"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Open, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Close, k.Menu, k.Top, k.Tab},
		{k.Back, k.Forward, k.PrevCat, k.NextCat},
		{k.Refresh, k.Help, k.Quit},
	}
}
