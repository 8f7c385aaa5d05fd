package search

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	catalogdto "instalike/internal/modules/catalog/dto"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

type resultsMsg struct {
	query   string
	results []catalogdto.SearchResultOutput
	err     error
}

type keyMap struct {
	Focus key.Binding
	Done  key.Binding
}

type Model struct {
	catalog views.CatalogPort
	input   textinput.Model
	query   string
	results []catalogdto.SearchResultOutput
	err     error
	width   int
	keys    keyMap
}

func New(c views.Context) Model {
	return Model{
		catalog: c.Catalog,
		input:   views.NewInput("Поиск", 64),
		width:   c.Width,
		keys: keyMap{
			Focus: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
			Done:  key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "stop typing")),
		},
	}
}

func (m Model) Init() tea.Cmd { return m.searchCmd("") }

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resultsMsg:
		// A slower answer for an older query must not win.
		if msg.query != m.query {
			return m, nil
		}
		m.results = msg.results
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			if key.Matches(msg, m.keys.Focus) {
				cmd := m.input.Focus()
				return m, cmd
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Done) {
			m.input.Blur()
			return m, nil
		}
	}

	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.query {
		m.query = q
		return m, tea.Batch(cmd, m.searchCmd(q))
	}
	return m, cmd
}

func (m Model) Frame() shell.Frame {
	return shell.Frame{Title: "Поиск", Body: m.body(), Active: nav.Search}
}

func (m Model) Capturing() bool { return m.input.Focused() }

func (m Model) Keys() []key.Binding { return []key.Binding{m.keys.Focus, m.keys.Done} }

// Results is the handle list currently on screen.
func (m Model) Results() []string {
	out := make([]string, len(m.results))
	for i, r := range m.results {
		out[i] = r.Handle
	}
	return out
}

func (m Model) body() string {
	var sb strings.Builder
	sb.WriteString(m.input.View() + "\n\n")
	if m.err != nil {
		return sb.String() + views.ErrorLine(m.err.Error())
	}
	if len(m.results) == 0 {
		return sb.String() + theme.Muted.Render("Ничего не найдено")
	}
	cells := make([]string, len(m.results))
	for i, r := range m.results {
		cells[i] = "▣ " + r.Handle
	}
	sb.WriteString(views.Grid(cells, 3, max(m.width, 30)))
	return sb.String()
}

func (m Model) searchCmd(q string) tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		results, err := catalog.Search(context.Background(), q)
		return resultsMsg{query: q, results: results, err: err}
	}
}
