package settings

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	sessiondto "instalike/internal/modules/session/dto"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

type entry struct {
	label  string
	logout bool
}

var entries = []entry{
	{label: "🔔 Уведомления (демо)"},
	{label: "🔒 Конфиденциальность (демо)"},
	{label: "👤 Аккаунт (демо)"},
	{label: "Выйти", logout: true},
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Edit   key.Binding
	Logout key.Binding
}

type Model struct {
	account views.AccountPort
	user    sessiondto.SessionOutput
	cursor  int
	keys    keyMap
}

func New(c views.Context) Model {
	return Model{
		account: c.Account,
		user:    c.Session,
		keys: keyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑/↓", "select")),
			Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
			Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile")),
			Logout: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "log out")),
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Edit):
		return m, views.Navigate(nav.Edit, nav.Push)
	case key.Matches(km, m.keys.Logout):
		return m, m.logout()
	case key.Matches(km, m.keys.Select):
		if entries[m.cursor].logout {
			return m, m.logout()
		}
		return m, views.Status(entries[m.cursor].label)
	}
	return m, nil
}

func (m Model) Frame() shell.Frame {
	var sb strings.Builder
	card := theme.Title.Render(views.Handle(m.user.Username)) + "  " + views.Button("e", "Изменить") + "\n" +
		theme.Muted.Render(m.user.Bio)
	sb.WriteString(theme.Card.Render(card) + "\n")
	for i, e := range entries {
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Hot.Render("▸ ")
		}
		label := e.label
		if e.logout {
			label = theme.Danger.Render(label)
		}
		sb.WriteString(pointer + label + "\n")
	}
	return shell.Frame{Title: "Настройки", Left: "‹ esc", Body: sb.String()}
}

func (m Model) Capturing() bool { return false }

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Select, m.keys.Edit, m.keys.Logout}
}

func (m Model) logout() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		if err := account.Logout(context.Background()); err != nil {
			return views.StatusMsg{Text: "logout: " + err.Error()}
		}
		return views.NavigateMsg{Route: nav.Login, Transition: nav.Replace}
	}
}
