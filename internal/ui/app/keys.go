package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Nav     key.Binding
	Back    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Nav:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "bottom nav")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to path")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// helpKeys joins the global bindings with those of the mounted view.
type helpKeys struct {
	global keyMap
	view   []key.Binding
}

func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.global.Help, k.global.Palette, k.global.Back, k.global.Quit}
}

func (k helpKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.global.Nav, k.global.Back},
		{k.global.Help, k.global.Palette, k.global.Quit},
	}
	if len(k.view) > 0 {
		groups = append([][]key.Binding{k.view}, groups...)
	}
	return groups
}
