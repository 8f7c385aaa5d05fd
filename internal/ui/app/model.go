package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	sessiondto "instalike/internal/modules/session/dto"
	"instalike/internal/platform/logging"
	"instalike/internal/ui/components"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
	"instalike/internal/ui/theme"
	"instalike/internal/ui/views"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Current(ctx context.Context) sessiondto.Presence
	views.AccountPort
}

type Options struct {
	// Width is used until the terminal reports its size.
	Width         int
	MarkdownStyle string
	Log           logrus.FieldLogger
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the navigator and the mounted
// view, plus the help overlay and the go-to palette. Views ask for navigation
// through messages; only this model touches history.
type Model struct {
	session   sessionPort
	catalog   views.CatalogPort
	navigator *nav.Navigator
	registry  Registry
	log       logrus.FieldLogger

	route   nav.Route
	current views.View

	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	status        string
	width         int
	height        int
	markdownStyle string
}

func NewModel(session sessionPort, catalog views.CatalogPort, opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	m := Model{
		session:       session,
		catalog:       catalog,
		navigator:     nav.NewNavigator(session, log),
		registry:      NewRegistry(),
		log:           log,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		width:         opts.Width,
		markdownStyle: opts.MarkdownStyle,
	}
	m.route = m.navigator.Start(context.Background())
	m.current = m.build(m.route)
	return m
}

func (m Model) Init() tea.Cmd { return m.current.Init() }

// Route is the route of the mounted view.
func (m Model) Route() nav.Route { return m.route }

// History is the navigator's stack, oldest first.
func (m Model) History() []nav.Route { return m.navigator.History() }

func (m Model) Status() string { return m.status }

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	// The palette takes key input while open; everything else still reaches
	// the mounted view.
	if km, ok := msg.(tea.KeyMsg); ok && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(km)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 60))
		m.help.Width = m.width
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(tea.WindowSizeMsg{Width: m.width, Height: m.bodyHeight()})
		return m, cmd

	case views.NavigateMsg:
		cmd := m.mount(m.navigator.Navigate(ctx, msg.Route, msg.Transition))
		return m, cmd

	case views.BackMsg:
		return m.back()

	case views.StatusMsg:
		m.status = msg.Text
		return m, nil

	case components.PaletteSubmitMsg:
		if msg.Input == "" {
			return m, nil
		}
		cmd := m.mount(m.navigator.NavigatePath(ctx, msg.Input, nav.Push))
		return m, cmd

	case components.PaletteCancelMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the view while it takes raw text.
		if m.current.Capturing() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd := m.palette.Open()
			return m, cmd
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Nav):
			if route, ok := shell.DestinationForKey(msg.String()); ok && m.route.Protected() {
				cmd := m.mount(m.navigator.Navigate(ctx, route, nav.Push))
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := 0
	if m.height > 0 {
		contentH = max(m.height-lipgloss.Height(statusBar), 1)
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.frameWidth()).Height(contentH).
			Render(m.help.FullHelpView(helpKeys{global: m.keys, view: m.current.Keys()}.FullHelp()))
	case m.palette.Visible():
		content = lipgloss.Place(m.frameWidth(), contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.route.Protected():
		content = shell.Compose(m.current.Frame(), m.frameWidth(), contentH)
	default:
		content = lipgloss.NewStyle().Width(m.frameWidth()).Height(contentH).
			Render(m.current.Frame().Body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	hint := "?:help  ::go to  b:back  q:quit"
	if !m.route.Protected() {
		hint = "enter:log in  ctrl+c:quit"
	}
	left := m.status
	right := theme.Muted.Render(hint)
	gap := max(m.frameWidth()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) mount(route nav.Route) tea.Cmd {
	m.route = route
	m.status = ""
	m.current = m.build(route)
	return m.current.Init()
}

func (m Model) back() (tea.Model, tea.Cmd) {
	route, ok := m.navigator.Back(context.Background())
	if !ok {
		m.status = "nothing to go back to"
		return m, nil
	}
	cmd := m.mount(route)
	return m, cmd
}

// build hands the producer a fresh read of the session, so views reflect the
// latest write.
func (m Model) build(route nav.Route) views.View {
	s, present := m.session.Current(context.Background()).Get()
	c := views.Context{
		Session:       s,
		Catalog:       m.catalog,
		Account:       m.session,
		Width:         m.frameWidth(),
		Height:        m.bodyHeight(),
		MarkdownStyle: m.markdownStyle,
	}
	return m.registry.Resolve(route)(c, present)
}

func (m Model) frameWidth() int {
	if m.width <= 0 {
		return shell.MinWidth
	}
	return m.width
}

// bodyHeight is what is left for a view under the header, around the two
// dividers and above the bottom bar and status line.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-5, 1)
}
