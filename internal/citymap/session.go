package citymap

import "strings"

// Role is the acting user's role as injected by the host page.
type Role string

const (
	RolePlayer Role = "player"
	RoleDM     Role = "dm"
	RoleAdmin  Role = "admin"
)

// ParseRole normalizes a host-provided role string.
func ParseRole(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

// Session is the acting user.
type Session struct {
	UserID int
	Role   Role
}

// CanAuthorNotes reports whether the session may add notes.
func (s Session) CanAuthorNotes() bool {
	return s.Role == RolePlayer
}

// CanModerateNotes reports whether the session may edit or delete any note.
func (s Session) CanModerateNotes() bool {
	return s.Role == RoleAdmin
}

// Owns reports whether note was written by the session user.
func (s Session) Owns(note Note) bool {
	return s.UserID != 0 && note.UserID == s.UserID
}

// CanModify reports whether the session may edit or delete note.
func (s Session) CanModify(note Note) bool {
	return s.Owns(note) || s.CanModerateNotes()
}

// OwnsNoteIn reports whether any of notes belongs to the session user.
func (s Session) OwnsNoteIn(notes []Note) bool {
	for _, note := range notes {
		if s.Owns(note) {
			return true
		}
	}
	return false
}
