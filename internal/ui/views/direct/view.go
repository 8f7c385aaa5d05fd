package direct

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	catalogdto "instalike/internal/modules/catalog/dto"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

type loadedMsg struct {
	chats []catalogdto.ChatOutput
	err   error
}

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
}

type Model struct {
	catalog views.CatalogPort
	chats   []catalogdto.ChatOutput
	cursor  int
	loaded  bool
	err     error
	keys    keyMap
}

func New(c views.Context) Model {
	return Model{
		catalog: c.Catalog,
		keys: keyMap{
			Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
			Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑/↓", "select")),
			Open: key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
		},
	}
}

func (m Model) Init() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		chats, err := catalog.Chats(context.Background())
		return loadedMsg{chats: chats, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loaded = true
		m.chats = msg.chats
		m.err = msg.err
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.chats)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			// Conversations are not part of the demo; opening only reports it.
			if m.cursor < len(m.chats) {
				return m, views.Status(fmt.Sprintf("чат с %s недоступен в демо", views.Handle(m.chats[m.cursor].User)))
			}
		}
	}
	return m, nil
}

func (m Model) Frame() shell.Frame {
	return shell.Frame{Title: "Direct", Body: m.body()}
}

func (m Model) Capturing() bool { return false }

func (m Model) Keys() []key.Binding { return []key.Binding{m.keys.Up, m.keys.Open} }

func (m Model) body() string {
	if !m.loaded {
		return theme.Muted.Render("Загрузка…")
	}
	if m.err != nil {
		return views.ErrorLine(m.err.Error())
	}
	rows := make([]string, 0, len(m.chats))
	for i, c := range m.chats {
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Hot.Render("▸ ")
		}
		row := pointer + theme.Title.Render(views.Handle(c.User)) + "  " + views.Button("enter", "Открыть") + "\n" +
			"  " + theme.Muted.Render(c.Text)
		rows = append(rows, theme.Card.Render(row))
	}
	return strings.Join(rows, "\n")
}
