// Package nav holds the route table, the route guard and the navigator that
// drives transitions between views from the stored session.
package nav

import (
	"strings"

	sessiondto "instalike/internal/modules/session/dto"
)

// Route is the closed set of navigable views.
type Route int

const (
	Login Route = iota
	Home
	Search
	Direct
	Activity
	Profile
	Edit
	Settings
	Create
	routeCount
)

var routeNames = [routeCount]string{
	"login", "home", "search", "direct", "activity", "profile", "edit", "settings", "create",
}

// All lists every route in declaration order.
func All() []Route {
	out := make([]Route, 0, routeCount)
	for r := Route(0); r < routeCount; r++ {
		out = append(out, r)
	}
	return out
}

func (r Route) String() string {
	if r < 0 || r >= routeCount {
		return "unknown"
	}
	return routeNames[r]
}

func (r Route) Path() string { return "/" + r.String() }

// Protected reports whether the route requires a session. Only Login is public.
func (r Route) Protected() bool { return r != Login }

// Parse maps a path to its route. The root path and unmatched paths report
// false; callers resolve them with Landing.
func Parse(path string) (Route, bool) {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.ToLower(strings.TrimSuffix(p, "/"))
	if !strings.HasPrefix(p, "/") {
		return 0, false
	}
	name := strings.TrimPrefix(p, "/")
	for r := Route(0); r < routeCount; r++ {
		if routeNames[r] == name {
			return r, true
		}
	}
	return 0, false
}

// Landing is where the root path and unknown paths go.
func Landing(presence sessiondto.Presence) Route {
	if presence.IsPresent() {
		return Home
	}
	return Login
}
