package models

import "github.com/google/uuid"

// Session is the identity bound to a client after login.
type Session struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// NewSession builds a session for the given user.
func NewSession(user *UserDB) Session {
	return Session{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// Valid reports whether every identity field is present.
// A partially filled session is treated as unauthenticated.
func (s *Session) Valid() bool {
	return s != nil && s.UserID != uuid.Nil && s.Username != "" && s.Email != ""
}
