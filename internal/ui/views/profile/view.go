package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
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
	profile catalogdto.ProfileOutput
	err     error
}

type modalKind int

const (
	modalNone modalKind = iota
	modalFollowers
	modalFollowing
)

type keyMap struct {
	Edit      key.Binding
	Settings  key.Binding
	Followers key.Binding
	Following key.Binding
	Close     key.Binding
}

type Model struct {
	catalog views.CatalogPort
	user    sessiondto.SessionOutput
	profile catalogdto.ProfileOutput
	loaded  bool
	err     error
	modal   modalKind
	list    viewport.Model
	width   int
	height  int
	keys    keyMap
}

func New(c views.Context) Model {
	return Model{
		catalog: c.Catalog,
		user:    c.Session,
		list:    viewport.New(0, 0),
		width:   c.Width,
		height:  c.Height,
		keys: keyMap{
			Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile")),
			Settings:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
			Followers: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "followers")),
			Following: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "following")),
			Close:     key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close list")),
		},
	}
}

func (m Model) Init() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		p, err := catalog.Profile(context.Background())
		return loadedMsg{profile: p, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.profile = msg.profile
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			if key.Matches(msg, m.keys.Close) {
				m.modal = modalNone
				return m, nil
			}
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Edit):
			return m, views.Navigate(nav.Edit, nav.Push)
		case key.Matches(msg, m.keys.Settings):
			return m, views.Navigate(nav.Settings, nav.Push)
		case key.Matches(msg, m.keys.Followers):
			m.open(modalFollowers)
		case key.Matches(msg, m.keys.Following):
			m.open(modalFollowing)
		}
	}
	return m, nil
}

func (m Model) Frame() shell.Frame {
	body := m.body()
	if m.modal != modalNone {
		body = m.modalView()
	}
	return shell.Frame{Title: m.user.Username, Right: ", ⚙", Body: body, Active: nav.Profile}
}

// Capturing is true while a list is open so esc closes it instead of going back.
func (m Model) Capturing() bool { return m.modal != modalNone }

func (m Model) Keys() []key.Binding {
	if m.modal != modalNone {
		return []key.Binding{m.keys.Close}
	}
	return []key.Binding{m.keys.Edit, m.keys.Settings, m.keys.Followers, m.keys.Following}
}

func (m *Model) open(kind modalKind) {
	if !m.loaded || m.err != nil {
		return
	}
	m.modal = kind
	handles := m.profile.Followers
	if kind == modalFollowing {
		handles = m.profile.Following
	}
	rows := make([]string, len(handles))
	for i, h := range handles {
		rows[i] = theme.Ring.Render("◎") + " " + views.Handle(h) + "  " + theme.Action.Render("Подписаться")
	}
	m.list.SetContent(strings.Join(rows, "\n"))
	m.list.GotoTop()
	m.resize()
}

func (m *Model) resize() {
	m.list.Width = max(m.width-4, 20)
	h := 10
	if m.height > 0 {
		h = max(m.height/2, 3)
	}
	m.list.Height = h
}

func (m Model) modalTitle() string {
	if m.modal == modalFollowing {
		return "Подписки"
	}
	return "Подписчики"
}

func (m Model) modalView() string {
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Title.Render(m.modalTitle()), "   ", views.Button("esc", "Закрыть"))
	return theme.Modal.Render(head + "\n\n" + m.list.View())
}

func (m Model) body() string {
	if !m.loaded {
		return theme.Muted.Render("Загрузка…")
	}
	if m.err != nil {
		return views.ErrorLine(m.err.Error())
	}
	p := m.profile
	w := max(m.width, 30)

	stats := views.Grid([]string{
		fmt.Sprintf("%d Публикации", len(p.Posts)),
		fmt.Sprintf("%d Подписчики [f]", len(p.Followers)),
		fmt.Sprintf("%d Подписки [g]", len(p.Following)),
	}, 3, w)

	var sb strings.Builder
	sb.WriteString(stats + "\n\n")
	sb.WriteString(theme.Title.Render(views.Handle(m.user.Username)) + "\n")
	sb.WriteString(theme.Muted.Render(m.user.AvatarURL) + "\n")
	if m.user.Bio != "" {
		sb.WriteString(m.user.Bio + "\n")
	}
	sb.WriteString(views.Button("e", "Редактировать профиль") + "  " + theme.Muted.Render("Поделиться профилем") + "\n\n")

	marks := make([]string, len(p.Highlights))
	for i, h := range p.Highlights {
		mark := theme.Ring.Render("◎")
		if h.Empty {
			mark = theme.Muted.Render("⊕")
		}
		marks[i] = mark + " " + h.Label
	}
	sb.WriteString(strings.Join(marks, "  ") + "\n\n")

	tiles := make([]string, len(p.Posts))
	for i, k := range p.Posts {
		tiles[i] = "▣ " + k
	}
	sb.WriteString(views.Grid(tiles, 3, w))
	return sb.String()
}
