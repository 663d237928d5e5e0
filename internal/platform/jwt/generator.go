package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user, bound to the session sessionID.
	GenerateToken(userID, email, sessionID string) (string, time.Time, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed JWT token with standard claims and returns its expiry.
// The sid claim ties the token to a server-side session so signing out revokes it.
func (g *generator) GenerateToken(userID, email, sessionID string) (string, time.Time, error) {
	now := g.now()
	exp := now.Add(g.expiration)
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
		"email": email,
		"sid":   sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, exp, nil
}
