// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"estate_backend/internal/shared/identity"
)

// User represents a registered user in the system.
type User struct {
	// ID is an opaque UUID string.
	ID string

	Name string

	// Email must be unique across all users.
	Email string

	// Phone is optional.
	Phone string

	// Role defaults to identity.RoleUser.
	Role string

	EmailVerified bool

	// Image is an optional avatar URL.
	Image string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity returns the request-scoped view of the user.
func (u *User) Identity() *identity.Identity {
	role := u.Role
	if role == "" {
		role = identity.RoleUser
	}
	return &identity.Identity{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          role,
		EmailVerified: u.EmailVerified,
	}
}
