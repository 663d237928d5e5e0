package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/shared/identity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// DefaultSessionTTL はセッションCookieの既定の有効期間です。
	DefaultSessionTTL = 7 * 24 * time.Hour

	verificationTTL = 24 * time.Hour

	// dummyHash はユーザーが存在しない場合にもbcrypt比較を行うためのハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// SignUpInput はサインアップの入力です。
type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ClientInfo はセッションに記録するクライアント情報です。
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// AuthResult はサインアップ/サインイン成功時に発行されたセッションとアクセストークンです。
type AuthResult struct {
	User                 *entity.User
	Session              *entity.Session
	AccessToken          string
	AccessTokenExpiresAt time.Time
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users         UserRepository
	accounts      AccountRepository
	sessions      SessionRepository
	verifications VerificationRepository
	jwtGenerator  JWTGenerator
	sender        VerificationSender
	sessionTTL    time.Duration
	now           func() time.Time
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(
	users UserRepository,
	accounts AccountRepository,
	sessions SessionRepository,
	verifications VerificationRepository,
	jwtGenerator JWTGenerator,
	sender VerificationSender,
	sessionTTL time.Duration,
) *authUsecase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &authUsecase{
		users:         users,
		accounts:      accounts,
		sessions:      sessions,
		verifications: verifications,
		jwtGenerator:  jwtGenerator,
		sender:        sender,
		sessionTTL:    sessionTTL,
		now:           time.Now,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp はユーザーとcredentialアカウントを作成し、確認トークンとセッションを発行します。
func (u *authUsecase) SignUp(ctx context.Context, in SignUpInput, client ClientInfo) (*AuthResult, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(in.Name),
		Email: normalizeEmail(in.Email),
		Phone: strings.TrimSpace(in.Phone),
		Role:  identity.RoleUser,
	}
	account := &entity.Account{
		ID:         uuid.NewString(),
		AccountID:  user.ID,
		ProviderID: entity.ProviderCredential,
		UserID:     user.ID,
		Password:   string(hashed),
	}
	if err := u.users.CreateWithAccount(ctx, user, account); err != nil {
		return nil, err
	}

	// 確認メールの送信失敗でサインアップ自体は失敗させない
	if err := u.issueVerification(ctx, user.Email); err != nil {
		slog.Warn("failed to issue verification token", "error", err, "user_id", user.ID)
	}

	return u.issueSession(ctx, user, client)
}

// SignIn はユーザーを認証し、成功時にセッションとJWTアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) SignIn(ctx context.Context, email, password string, client ClientInfo) (*AuthResult, error) {
	passwordHash := dummyHash

	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		account, accErr := u.accounts.FindCredential(ctx, user.ID)
		switch {
		case accErr == nil:
			passwordHash = account.Password
		case errors.Is(accErr, ErrAccountNotFound):
			err = accErr
		default:
			return nil, fmt.Errorf("failed to load account: %w", accErr)
		}
	case errors.Is(err, ErrUserNotFound):
	default:
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueSession(ctx, user, client)
}

// SignOut はセッションを削除します。存在しないトークンはエラーにしません。
// 同じセッションに紐付くアクセストークン（JWT）もこれ以降は受け付けられません。
func (u *authUsecase) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.sessions.DeleteByToken(ctx, token)
}

// VerifyEmail は確認トークンを消費し、対応するユーザーを確認済みにします。
func (u *authUsecase) VerifyEmail(ctx context.Context, token string) error {
	v, err := u.verifications.Consume(ctx, token)
	if err != nil {
		return err
	}
	if v.IsExpired(u.now()) {
		return ErrVerificationExpired
	}
	return u.users.MarkEmailVerified(ctx, v.Identifier)
}

// Me は認証済み呼び出し元の最新のユーザー情報を返します。
func (u *authUsecase) Me(ctx context.Context, caller *identity.Identity) (*entity.User, error) {
	if caller == nil {
		return nil, ErrUserNotFound
	}
	return u.users.FindByID(ctx, caller.ID)
}

func (u *authUsecase) issueVerification(ctx context.Context, email string) error {
	token, err := newOpaqueToken()
	if err != nil {
		return err
	}
	now := u.now()
	v := &entity.Verification{
		ID:         uuid.NewString(),
		Identifier: email,
		Value:      token,
		ExpiresAt:  now.Add(verificationTTL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.verifications.Create(ctx, v); err != nil {
		return err
	}
	return u.sender.SendVerification(ctx, email, token)
}

func (u *authUsecase) issueSession(ctx context.Context, user *entity.User, client ClientInfo) (*AuthResult, error) {
	token, err := newOpaqueToken()
	if err != nil {
		return nil, err
	}
	now := u.now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    user.ID,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	access, exp, err := u.jwtGenerator.GenerateToken(user.ID, user.Email, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		User:                 user,
		Session:              session,
		AccessToken:          access,
		AccessTokenExpiresAt: exp,
	}, nil
}
