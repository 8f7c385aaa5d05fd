package nav

import (
	"context"

	"github.com/sirupsen/logrus"

	sessiondto "instalike/internal/modules/session/dto"
)

// Transition is the history effect of a navigation.
type Transition int

const (
	// Push appends a history entry; Back returns to the previous one.
	Push Transition = iota
	// Replace overwrites the current entry.
	Replace
)

func (t Transition) String() string {
	if t == Replace {
		return "replace"
	}
	return "push"
}

type SessionReader interface {
	Current(ctx context.Context) sessiondto.Presence
}

// Navigator owns the history stack. Every decision reads the session once and
// hands the result to the guard.
type Navigator struct {
	session SessionReader
	guard   Guard
	history []Route
	log     logrus.FieldLogger
}

func NewNavigator(session SessionReader, log logrus.FieldLogger) *Navigator {
	return &Navigator{session: session, log: log}
}

// Start performs the initial root redirect.
func (n *Navigator) Start(ctx context.Context) Route {
	return n.NavigatePath(ctx, "/", Replace)
}

// Navigate applies kind to route, redirecting to Login when the guard refuses.
func (n *Navigator) Navigate(ctx context.Context, route Route, kind Transition) Route {
	return n.apply(route, kind, n.session.Current(ctx))
}

// NavigatePath resolves a path. The root path and unknown paths land on Home
// or Login through a replace, whatever kind was requested.
func (n *Navigator) NavigatePath(ctx context.Context, path string, kind Transition) Route {
	presence := n.session.Current(ctx)
	route, ok := Parse(path)
	if !ok {
		n.write(route, kind)
		landing := Landing(presence)
		n.log.WithFields(logrus.Fields{"path": path, "route": landing.String()}).Debug("unmatched path")
		n.write(landing, Replace)
		return landing
	}
	return n.apply(route, kind, presence)
}

// Back pops one entry. It reports false when there is nothing to go back to.
// The entry it lands on is checked against the guard again.
func (n *Navigator) Back(ctx context.Context) (Route, bool) {
	if len(n.history) < 2 {
		return n.Current(), false
	}
	n.history = n.history[:len(n.history)-1]
	top := n.Current()
	if n.guard.Authorize(top.Protected(), n.session.Current(ctx)) == RedirectToLogin {
		n.redirect(top)
		return Login, true
	}
	return top, true
}

func (n *Navigator) Current() Route {
	if len(n.history) == 0 {
		return Login
	}
	return n.history[len(n.history)-1]
}

func (n *Navigator) Depth() int { return len(n.history) }

// History returns a copy of the stack, oldest first.
func (n *Navigator) History() []Route {
	return append([]Route(nil), n.history...)
}

func (n *Navigator) apply(route Route, kind Transition, presence sessiondto.Presence) Route {
	n.write(route, kind)
	if n.guard.Authorize(route.Protected(), presence) == RedirectToLogin {
		n.redirect(route)
		return Login
	}
	n.log.WithFields(logrus.Fields{"route": route.String(), "transition": kind.String()}).Debug("navigated")
	return route
}

func (n *Navigator) redirect(from Route) {
	n.log.WithField("route", from.String()).Info("no session, redirecting to login")
	n.write(Login, Replace)
}

func (n *Navigator) write(route Route, kind Transition) {
	if kind == Replace && len(n.history) > 0 {
		n.history[len(n.history)-1] = route
		return
	}
	n.history = append(n.history, route)
}
