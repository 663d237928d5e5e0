package usecase

import (
	"context"
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
	jwtmw "estate_backend/internal/platform/jwt"
)

type mockUserRepository struct {
	CreateWithAccountFunc func(ctx context.Context, user *entity.User, account *entity.Account) error
	FindByEmailFunc       func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc          func(ctx context.Context, id string) (*entity.User, error)
	MarkEmailVerifiedFunc func(ctx context.Context, email string) error
}

func (m *mockUserRepository) CreateWithAccount(ctx context.Context, user *entity.User, account *entity.Account) error {
	if m.CreateWithAccountFunc != nil {
		return m.CreateWithAccountFunc(ctx, user, account)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) MarkEmailVerified(ctx context.Context, email string) error {
	if m.MarkEmailVerifiedFunc != nil {
		return m.MarkEmailVerifiedFunc(ctx, email)
	}
	return nil
}

type mockAccountRepository struct {
	FindCredentialFunc func(ctx context.Context, userID string) (*entity.Account, error)
}

func (m *mockAccountRepository) FindCredential(ctx context.Context, userID string) (*entity.Account, error) {
	if m.FindCredentialFunc != nil {
		return m.FindCredentialFunc(ctx, userID)
	}
	return nil, ErrAccountNotFound
}

type mockSessionRepository struct {
	CreateFunc        func(ctx context.Context, s *entity.Session) error
	FindByTokenFunc   func(ctx context.Context, token string) (*entity.Session, error)
	FindByIDFunc      func(ctx context.Context, id string) (*entity.Session, error)
	DeleteByTokenFunc func(ctx context.Context, token string) error
}

func (m *mockSessionRepository) Create(ctx context.Context, s *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(ctx, token)
	}
	return nil
}

type mockVerificationRepository struct {
	CreateFunc  func(ctx context.Context, v *entity.Verification) error
	ConsumeFunc func(ctx context.Context, value string) (*entity.Verification, error)
}

func (m *mockVerificationRepository) Create(ctx context.Context, v *entity.Verification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *mockVerificationRepository) Consume(ctx context.Context, value string) (*entity.Verification, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, value)
	}
	return nil, ErrVerificationNotFound
}

type mockJWTGenerator struct {
	GenerateTokenFunc func(userID, email, sessionID string) (string, time.Time, error)
}

func (m *mockJWTGenerator) GenerateToken(userID, email, sessionID string) (string, time.Time, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email, sessionID)
	}
	return "access-token", time.Now().Add(time.Hour), nil
}

type mockSender struct {
	SendFunc func(ctx context.Context, email, token string) error
}

func (m *mockSender) SendVerification(ctx context.Context, email, token string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email, token)
	}
	return nil
}

type mockVerifier struct {
	VerifyFunc func(token string) (*jwtmw.Claims, error)
}

func (m *mockVerifier) Verify(token string) (*jwtmw.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil, jwtmw.ErrInvalidToken
}
