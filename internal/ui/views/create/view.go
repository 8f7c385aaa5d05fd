package create

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/views"
)

const page = `## Новая публикация

Экран создания поста. Можно добавить загрузку по URL и предпросмотр.
`

type Model struct {
	style    string
	width    int
	rendered string
}

func New(c views.Context) Model {
	m := Model{style: c.MarkdownStyle, width: c.Width}
	m.rendered = m.render()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (views.View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok && sz.Width != m.width {
		m.width = sz.Width
		m.rendered = m.render()
	}
	return m, nil
}

func (m Model) Frame() shell.Frame {
	return shell.Frame{Title: "Создать", Body: m.rendered, Active: nav.Create}
}

func (m Model) Capturing() bool { return false }

func (m Model) Keys() []key.Binding { return nil }

// render falls back to the raw text when glamour cannot build a renderer.
func (m Model) render() string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(m.width-4, 20))}
	if m.style == "" || m.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(m.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return page
	}
	out, err := r.Render(page)
	if err != nil {
		return page
	}
	return strings.Trim(out, "\n")
}
