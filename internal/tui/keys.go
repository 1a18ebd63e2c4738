package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for the browse view.
type keyMap struct {
	MoveNext key.Binding
	MovePrev key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		MoveNext: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("j/tab", "next card"),
		),
		MovePrev: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("k", "previous card"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("h/←", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("l/→", "next page"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove post"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Delete, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveNext, k.MovePrev, k.Delete},
		{k.PrevPage, k.NextPage},
		{k.Help, k.Quit},
	}
}
