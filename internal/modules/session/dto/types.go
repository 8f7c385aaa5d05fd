package dto

type LoginInput struct {
	Username  string
	AvatarURL string
}

type ProfileInput struct {
	Username  string
	AvatarURL string
	Bio       string
}

type SessionOutput struct {
	Username  string
	AvatarURL string
	Bio       string
}

// Presence is either Present(SessionOutput) or Absent. The zero value is Absent.
type Presence struct {
	session SessionOutput
	present bool
}

func Present(s SessionOutput) Presence { return Presence{session: s, present: true} }

func Absent() Presence { return Presence{} }

func (p Presence) IsPresent() bool { return p.present }

// Get returns the session and true when present.
func (p Presence) Get() (SessionOutput, bool) {
	return p.session, p.present
}
