package entity

import "time"

// Session represents a signed-in browser or client.
// Token is the opaque value carried in the session cookie.
type Session struct {
	ID        string
	Token     string // 64-character hex string
	UserID    string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session has passed its expiration time at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
