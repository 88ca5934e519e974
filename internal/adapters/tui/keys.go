package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search key.Binding
	Cycle  key.Binding
	Erase  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Focus  key.Binding
	Reset  key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search / use word")),
		Cycle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "cycle color")),
		Erase:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "erase")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Focus:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "grid/suggestions")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Theme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Cycle, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Cycle, k.Erase},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Focus, k.Reset, k.Theme},
		{k.Help, k.Quit},
	}
}
