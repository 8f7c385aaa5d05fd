// Package views holds the contract every screen implements and the messages
// screens use to ask the root model for navigation.
package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	catalogdto "instalike/internal/modules/catalog/dto"
	sessiondto "instalike/internal/modules/session/dto"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/shell"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	Feed(ctx context.Context) ([]catalogdto.PostOutput, error)
	Stories(ctx context.Context) ([]catalogdto.StoryOutput, error)
	Search(ctx context.Context, query string) ([]catalogdto.SearchResultOutput, error)
	Chats(ctx context.Context) ([]catalogdto.ChatOutput, error)
	Activity(ctx context.Context) ([]catalogdto.ActivityOutput, error)
	Profile(ctx context.Context) (catalogdto.ProfileOutput, error)
}

// AccountPort is the only way a view may change the stored session.
type AccountPort interface {
	Login(ctx context.Context, username, avatarURL string) (sessiondto.SessionOutput, error)
	SaveProfile(ctx context.Context, username, avatarURL, bio string) (sessiondto.SessionOutput, error)
	Logout(ctx context.Context) error
}

// Context is everything a producer may hand to a view. Session is a read
// model taken when the view was built; it is the zero value on Login.
type Context struct {
	Session       sessiondto.SessionOutput
	Catalog       CatalogPort
	Account       AccountPort
	Width         int
	Height        int
	MarkdownStyle string
}

// ─── view contract ───────────────────────────────────────────────────────────

type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	// Frame returns the header slots and body. Unprotected views are drawn
	// from Body alone.
	Frame() shell.Frame
	// Capturing reports whether the view is consuming raw keys, in which case
	// global bindings must yield.
	Capturing() bool
	Keys() []key.Binding
}

// ─── messages ────────────────────────────────────────────────────────────────

type NavigateMsg struct {
	Route      nav.Route
	Transition nav.Transition
}

type BackMsg struct{}

type StatusMsg struct{ Text string }

func Navigate(route nav.Route, kind nav.Transition) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route, Transition: kind} }
}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
