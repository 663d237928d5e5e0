package usecase

import (
	"context"

	"estate_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Implementations: adapters.sessionGorm (session table) and platform/session.SessionRedis.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its cookie token.
	// Returns ErrSessionNotFound when the token is unknown.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// FindByID retrieves a session by its ID, as carried in the sid claim of access tokens.
	// Returns ErrSessionNotFound when the session is unknown or was deleted.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// DeleteByToken removes a session. Unknown tokens are not an error.
	DeleteByToken(ctx context.Context, token string) error
}
