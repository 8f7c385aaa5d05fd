package edit

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/views"
)

const (
	fieldUsername = iota
	fieldAvatar
	fieldBio
	fieldCount
)

type failedMsg struct{ err error }

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Back   key.Binding
}

type Model struct {
	account views.AccountPort
	inputs  [fieldCount]textinput.Model
	focus   int
	err     string
	keys    keyMap
}

// New prefills the form from the session the view was built with.
func New(c views.Context) Model {
	m := Model{
		account: c.Account,
		keys: keyMap{
			Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
			Save:   key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
			Cancel: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cancel")),
			Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		},
	}
	m.inputs[fieldUsername] = views.NewInput("", 64)
	m.inputs[fieldAvatar] = views.NewInput("https://...", 512)
	m.inputs[fieldBio] = views.NewInput("", 256)
	m.inputs[fieldUsername].SetValue(c.Session.Username)
	m.inputs[fieldAvatar].SetValue(c.Session.AvatarURL)
	m.inputs[fieldBio].SetValue(c.Session.Bio)
	m.inputs[fieldUsername].Focus()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case failedMsg:
		m.err = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			return m.save()
		case key.Matches(msg, m.keys.Cancel):
			return m, views.Navigate(nav.Profile, nav.Push)
		case key.Matches(msg, m.keys.Back):
			return m, views.Back()
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) Frame() shell.Frame {
	var sb strings.Builder
	sb.WriteString(views.Field("Имя пользователя", m.inputs[fieldUsername]) + "\n\n")
	sb.WriteString(views.Field("URL аватара", m.inputs[fieldAvatar]) + "\n\n")
	sb.WriteString(views.Field("Био", m.inputs[fieldBio]) + "\n\n")
	sb.WriteString(views.Button("enter", "Сохранить") + "  " + views.Button("ctrl+x", "Отмена"))
	if m.err != "" {
		sb.WriteString("\n" + views.ErrorLine(m.err))
	}
	return shell.Frame{Title: "Редактировать профиль", Left: "‹ esc", Body: sb.String()}
}

func (m Model) Capturing() bool { return true }

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Next, m.keys.Save, m.keys.Cancel, m.keys.Back}
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m Model) save() (views.View, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	if username == "" {
		m.err = "введите имя пользователя"
		return m, nil
	}
	m.err = ""
	account := m.account
	avatar, bio := m.inputs[fieldAvatar].Value(), m.inputs[fieldBio].Value()
	return m, func() tea.Msg {
		if _, err := account.SaveProfile(context.Background(), username, avatar, bio); err != nil {
			return failedMsg{err: err}
		}
		return views.NavigateMsg{Route: nav.Profile, Transition: nav.Push}
	}
}
