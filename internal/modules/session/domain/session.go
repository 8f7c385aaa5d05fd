package domain

import "strings"

const (
	// StorageKey names the single persisted session record.
	StorageKey       = "insta_like_user"
	DefaultAvatarURL = "https://i.pravatar.cc/150?img=3"
	DefaultBio       = "О себе"
)

// Session is the authenticated-user record. Its presence in storage is the
// only authentication signal.
type Session struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
}

// Valid reports whether the record is well formed enough to count as a login.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.Username) != ""
}

// Normalize trims every field and fills the avatar placeholder.
func (s Session) Normalize() Session {
	s.Username = strings.TrimSpace(s.Username)
	s.AvatarURL = strings.TrimSpace(s.AvatarURL)
	s.Bio = strings.TrimSpace(s.Bio)
	if s.AvatarURL == "" {
		s.AvatarURL = DefaultAvatarURL
	}
	return s
}
