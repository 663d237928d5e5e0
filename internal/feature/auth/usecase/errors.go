// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for any sign-in failure so callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when the password is shorter than the minimum length.
	ErrWeakPassword = errors.New("password too short")

	// ErrAccountNotFound is returned when a user has no credential account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionNotFound is returned when a session cannot be found by token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrVerificationNotFound is returned for unknown or already consumed verification tokens.
	ErrVerificationNotFound = errors.New("verification token not found")

	// ErrVerificationExpired is returned when the verification token has expired.
	ErrVerificationExpired = errors.New("verification token has expired")
)
