package home

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "instalike/internal/modules/catalog/dto"
	sessiondto "instalike/internal/modules/session/dto"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

type loadedMsg struct {
	stories []catalogdto.StoryOutput
	feed    []catalogdto.PostOutput
	err     error
}

type keyMap struct {
	Direct   key.Binding
	Settings key.Binding
}

type Model struct {
	catalog views.CatalogPort
	user    sessiondto.SessionOutput
	stories []catalogdto.StoryOutput
	feed    []catalogdto.PostOutput
	loaded  bool
	err     error
	width   int
	keys    keyMap
}

func New(c views.Context) Model {
	return Model{
		catalog: c.Catalog,
		user:    c.Session,
		width:   c.Width,
		keys: keyMap{
			Direct:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "direct")),
			Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		},
	}
}

func (m Model) Init() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		ctx := context.Background()
		stories, err := catalog.Stories(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		feed, err := catalog.Feed(ctx)
		return loadedMsg{stories: stories, feed: feed, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case loadedMsg:
		m.loaded = true
		m.err = msg.err
		m.stories = msg.stories
		m.feed = msg.feed
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Direct):
			return m, views.Navigate(nav.Direct, nav.Push)
		case key.Matches(msg, m.keys.Settings):
			return m, views.Navigate(nav.Settings, nav.Push)
		}
	}
	return m, nil
}

func (m Model) Frame() shell.Frame {
	return shell.Frame{
		Title:  "Instagram",
		Left:   "✈ d",
		Right:  ", ⚙",
		Body:   m.body(),
		Active: nav.Home,
	}
}

func (m Model) Capturing() bool { return false }

func (m Model) Keys() []key.Binding { return []key.Binding{m.keys.Direct, m.keys.Settings} }

func (m Model) body() string {
	if !m.loaded {
		return theme.Muted.Render("Загрузка…")
	}
	if m.err != nil {
		return views.ErrorLine(m.err.Error())
	}

	own := theme.Ring.Render("◉") + " Ваша история"
	ring := []string{own}
	for _, s := range m.stories {
		ring = append(ring, theme.Ring.Render("◎")+" "+views.Handle(s.Handle))
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Width(max(m.width, 20)).Render(strings.Join(ring, "  ")))
	sb.WriteString("\n")
	for _, p := range m.feed {
		sb.WriteString("\n" + renderPost(p))
	}
	return sb.String()
}

func renderPost(p catalogdto.PostOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(views.Handle(p.User)) + "  " + theme.Muted.Render(p.Avatar) + "\n")
	sb.WriteString(theme.Muted.Render("▣ "+p.Image) + "\n")
	sb.WriteString("♡  ✈\n")
	sb.WriteString(theme.Title.Render(views.Handle(p.User)) + " " + p.Caption + "\n")
	return sb.String()
}
