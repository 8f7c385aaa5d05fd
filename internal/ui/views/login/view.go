package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

const (
	fieldUsername = iota
	fieldAvatar
	fieldCount
)

type failedMsg struct{ err error }

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

type Model struct {
	account views.AccountPort
	inputs  [fieldCount]textinput.Model
	focus   int
	err     string
	width   int
	keys    keyMap
}

func New(c views.Context) Model {
	m := Model{
		account: c.Account,
		width:   c.Width,
		keys: keyMap{
			Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
			Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log in")),
		},
	}
	m.inputs[fieldUsername] = views.NewInput("Имя пользователя", 64)
	m.inputs[fieldAvatar] = views.NewInput("URL аватара (необязательно)", 512)
	m.inputs[fieldUsername].Focus()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case failedMsg:
		m.err = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
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
	sb.WriteString(theme.Title.Render("Insta-like") + "\n\n")
	sb.WriteString(m.inputs[fieldUsername].View() + "\n")
	sb.WriteString(m.inputs[fieldAvatar].View() + "\n\n")
	sb.WriteString(views.Button("enter", "Войти") + "\n")
	if m.err != "" {
		sb.WriteString(views.ErrorLine(m.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(
		"Поддерживается аватар по ссылке (например, Imgur/Cloudinary). Если оставить пустым — поставим заглушку."))

	w := min(max(m.width, 30), 60)
	card := theme.Card.Width(w - 2).Render(sb.String())
	return shell.Frame{Title: "Insta-like", Body: lipgloss.PlaceHorizontal(max(m.width, w), lipgloss.Center, card)}
}

func (m Model) Capturing() bool { return true }

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Next, m.keys.Submit}
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// submit ignores a blank username; nothing is written and the form stays.
func (m Model) submit() (views.View, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	if username == "" {
		m.err = "введите имя пользователя"
		return m, nil
	}
	m.err = ""
	account := m.account
	avatar := m.inputs[fieldAvatar].Value()
	return m, func() tea.Msg {
		if _, err := account.Login(context.Background(), username, avatar); err != nil {
			return failedMsg{err: err}
		}
		return views.NavigateMsg{Route: nav.Home, Transition: nav.Replace}
	}
}
