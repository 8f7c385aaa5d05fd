package activity

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	catalogdto "instalike/internal/modules/catalog/dto"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

type loadedMsg struct {
	items []catalogdto.ActivityOutput
	err   error
}

type Model struct {
	catalog views.CatalogPort
	items   []catalogdto.ActivityOutput
	loaded  bool
	err     error
}

func New(c views.Context) Model { return Model{catalog: c.Catalog} }

func (m Model) Init() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		items, err := catalog.Activity(context.Background())
		return loadedMsg{items: items, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		m.loaded = true
		m.items = msg.items
		m.err = msg.err
	}
	return m, nil
}

func (m Model) Frame() shell.Frame {
	return shell.Frame{Title: "Активность", Body: m.body(), Active: nav.Activity}
}

func (m Model) Capturing() bool { return false }

func (m Model) Keys() []key.Binding { return nil }

func (m Model) body() string {
	if !m.loaded {
		return theme.Muted.Render("Загрузка…")
	}
	if m.err != nil {
		return views.ErrorLine(m.err.Error())
	}
	rows := make([]string, 0, len(m.items))
	for _, it := range m.items {
		rows = append(rows, theme.Card.Render(theme.Danger.Render("♥")+"  "+it.Text+"\n   "+theme.Muted.Render(it.When)))
	}
	return strings.Join(rows, "\n")
}
