package entity

import "time"

// ProviderCredential is the provider id of email/password accounts.
const ProviderCredential = "credential"

// Account links a user to an authentication provider.
// For credential accounts AccountID equals UserID and Password holds the bcrypt hash.
type Account struct {
	ID         string
	AccountID  string
	ProviderID string
	UserID     string
	Password   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
