package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/usecase"
)

type accountGorm struct {
	db *gorm.DB
}

var _ usecase.AccountRepository = (*accountGorm)(nil)

func NewAccountGorm(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// FindCredential returns the email/password account of userID.
func (r *accountGorm) FindCredential(ctx context.Context, userID string) (*entity.Account, error) {
	var m AccountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", userID, entity.ProviderCredential).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}
