package usecase

import (
	"context"
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// CreateWithAccount はユーザーと認証アカウントを1トランザクションで作成します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	CreateWithAccount(ctx context.Context, user *entity.User, account *entity.Account) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// MarkEmailVerified はメールアドレスに一致するユーザーを確認済みにします。
	MarkEmailVerified(ctx context.Context, email string) error
}

// AccountRepository は認証アカウントの参照を抽象化します。
type AccountRepository interface {
	// FindCredential はユーザーのcredentialアカウントを取得します。
	// 存在しない場合、ErrAccountNotFoundを返します。
	FindCredential(ctx context.Context, userID string) (*entity.Account, error)
}

// VerificationRepository はメール確認トークンの永続化を抽象化します。
type VerificationRepository interface {
	Create(ctx context.Context, v *entity.Verification) error

	// Consume はトークンを取得して削除します。存在しない場合、ErrVerificationNotFoundを返します。
	Consume(ctx context.Context, value string) (*entity.Verification, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンと有効期限を返します。
	// トークンは sessionID のセッションに紐付き、サインアウト後は無効になります。
	GenerateToken(userID, email, sessionID string) (string, time.Time, error)
}

// VerificationSender はメール確認トークンを利用者に届けます。
type VerificationSender interface {
	SendVerification(ctx context.Context, email, token string) error
}
