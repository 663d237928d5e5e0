package adapters

import (
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
)

// UserModel is the GORM model for the user table.
type UserModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	Name          string `gorm:"size:255;not null"`
	Email         string `gorm:"uniqueIndex;size:255;not null"`
	Phone         string `gorm:"size:32"`
	Role          string `gorm:"size:32;not null;default:user"`
	EmailVerified bool   `gorm:"not null;default:false"`
	Image         string `gorm:"size:1024"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "user"
}

func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Role:          m.Role,
		EmailVerified: m.EmailVerified,
		Image:         m.Image,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		Image:         u.Image,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AccountModel is the GORM model for the account table.
// OAuth token columns are kept for schema compatibility with external providers.
type AccountModel struct {
	ID                    string `gorm:"primaryKey;size:36"`
	AccountID             string `gorm:"size:255;not null"`
	ProviderID            string `gorm:"size:64;not null;index"`
	UserID                string `gorm:"size:36;not null;index"`
	AccessToken           *string
	RefreshToken          *string
	IDToken               *string
	AccessTokenExpiresAt  *time.Time
	RefreshTokenExpiresAt *time.Time
	Scope                 *string
	Password              string `gorm:"size:255"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (AccountModel) TableName() string {
	return "account"
}

func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:         m.ID,
		AccountID:  m.AccountID,
		ProviderID: m.ProviderID,
		UserID:     m.UserID,
		Password:   m.Password,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func AccountModelFromEntity(a *entity.Account) *AccountModel {
	return &AccountModel{
		ID:         a.ID,
		AccountID:  a.AccountID,
		ProviderID: a.ProviderID,
		UserID:     a.UserID,
		Password:   a.Password,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// VerificationModel is the GORM model for the verification table.
type VerificationModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Identifier string    `gorm:"size:255;not null;index"`
	Value      string    `gorm:"size:255;not null;uniqueIndex"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (VerificationModel) TableName() string {
	return "verification"
}

func (m *VerificationModel) ToEntity() *entity.Verification {
	return &entity.Verification{
		ID:         m.ID,
		Identifier: m.Identifier,
		Value:      m.Value,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
