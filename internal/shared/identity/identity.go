// Package identity defines the authenticated caller shared across features.
package identity

// RoleUser is the default role assigned at sign-up.
const RoleUser = "user"

// Identity is the authenticated user resolved from request credentials.
// A nil *Identity means the caller is anonymous.
type Identity struct {
	ID            string
	Email         string
	Name          string
	Role          string
	EmailVerified bool
}

// Owns reports whether the identity is the owner recorded as ownerID.
func (i *Identity) Owns(ownerID string) bool {
	return i != nil && i.ID != "" && i.ID == ownerID
}
