package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/usecase"
)

type verificationGorm struct {
	db *gorm.DB
}

var _ usecase.VerificationRepository = (*verificationGorm)(nil)

func NewVerificationGorm(db *gorm.DB) *verificationGorm {
	return &verificationGorm{db: db}
}

func (r *verificationGorm) Create(ctx context.Context, v *entity.Verification) error {
	return r.db.WithContext(ctx).Create(&VerificationModel{
		ID:         v.ID,
		Identifier: v.Identifier,
		Value:      v.Value,
		ExpiresAt:  v.ExpiresAt,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}).Error
}

// Consume は取得と削除を1トランザクションで行い、トークンの再利用を防ぎます。
func (r *verificationGorm) Consume(ctx context.Context, value string) (*entity.Verification, error) {
	var m VerificationModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("value = ?", value).First(&m).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", m.ID).Delete(&VerificationModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 並行リクエストが先に消費した
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVerificationNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}
