package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
	jwtmw "estate_backend/internal/platform/jwt"
	"estate_backend/internal/shared/identity"
)

// DefaultSessionCookie はセッショントークンを運ぶCookie名の既定値です。
const DefaultSessionCookie = "estate_session"

// TokenVerifier はBearerトークンを検証します。
type TokenVerifier interface {
	Verify(token string) (*jwtmw.Claims, error)
}

// SessionProvider はリクエストの資格情報から呼び出し元のIdentityを解決します。
// 資格情報がない、または無効な場合は nil, nil を返し、エラーはインフラ障害時のみです。
type SessionProvider struct {
	sessions   SessionRepository
	users      UserRepository
	verifier   TokenVerifier
	cookieName string
	now        func() time.Time
}

// NewSessionProvider は SessionProvider を生成します。cookieName が空なら DefaultSessionCookie を使います。
func NewSessionProvider(sessions SessionRepository, users UserRepository, verifier TokenVerifier, cookieName string) *SessionProvider {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &SessionProvider{
		sessions:   sessions,
		users:      users,
		verifier:   verifier,
		cookieName: cookieName,
		now:        time.Now,
	}
}

// CookieName はセッションCookie名を返します。
func (p *SessionProvider) CookieName() string {
	return p.cookieName
}

// Resolve はセッションCookie、次にAuthorizationヘッダーの順で資格情報を確認します。
func (p *SessionProvider) Resolve(ctx context.Context, r *http.Request) (*identity.Identity, error) {
	if c, err := r.Cookie(p.cookieName); err == nil && c.Value != "" {
		id, err := p.fromSession(ctx, c.Value)
		if err != nil || id != nil {
			return id, err
		}
	}

	if p.verifier != nil {
		if tok, ok := jwtmw.BearerToken(r.Header.Get("Authorization")); ok {
			return p.fromBearer(ctx, tok)
		}
	}
	return nil, nil
}

func (p *SessionProvider) fromSession(ctx context.Context, token string) (*identity.Identity, error) {
	return p.fromStoredSession(ctx, "", func() (*entity.Session, error) {
		return p.sessions.FindByToken(ctx, token)
	})
}

// fromBearer はJWTの sid が指すセッションがまだ有効な場合のみ受け付けます。
func (p *SessionProvider) fromBearer(ctx context.Context, token string) (*identity.Identity, error) {
	claims, err := p.verifier.Verify(token)
	if err != nil || claims.SessionID == "" {
		return nil, nil
	}
	return p.fromStoredSession(ctx, claims.UserID, func() (*entity.Session, error) {
		return p.sessions.FindByID(ctx, claims.SessionID)
	})
}

// fromStoredSession はセッションを読み込み、期限切れや userID 不一致なら未認証として扱います。
// userID が空なら所有者の照合は行いません。
func (p *SessionProvider) fromStoredSession(ctx context.Context, userID string, load func() (*entity.Session, error)) (*identity.Identity, error) {
	s, err := load()
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if s.IsExpired(p.now()) {
		return nil, nil
	}
	if userID != "" && s.UserID != userID {
		return nil, nil
	}
	return p.lookupUser(ctx, s.UserID)
}

func (p *SessionProvider) lookupUser(ctx context.Context, userID string) (*identity.Identity, error) {
	u, err := p.users.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u.Identity(), nil
}
