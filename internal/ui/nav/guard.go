package nav

import sessiondto "instalike/internal/modules/session/dto"

// Decision is the guard's verdict for one navigation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

func (d Decision) String() string {
	if d == RedirectToLogin {
		return "redirect_to_login"
	}
	return "allow"
}

// Guard decides whether a route may render for the given session presence.
type Guard struct{}

// Authorize allows unprotected routes and any route while a session is present.
func (Guard) Authorize(protected bool, presence sessiondto.Presence) Decision {
	if !protected || presence.IsPresent() {
		return Allow
	}
	return RedirectToLogin
}
