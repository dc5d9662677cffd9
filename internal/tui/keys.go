package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Spin   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("t", " ", "space"), key.WithHelp("t/space", "2D/3D")),
		Left:   key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←", "rotate west")),
		Right:  key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→", "rotate east")),
		Up:     key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑", "tilt north")),
		Down:   key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓", "tilt south")),
		Spin:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "spin")),
		Help:   key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Spin, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Spin},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
