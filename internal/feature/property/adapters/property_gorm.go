// Package adapters はpropertyフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/usecase"
)

// propertyGorm はPropertyRepositoryインターフェースのGORM実装です。
type propertyGorm struct {
	db *gorm.DB
}

// propertyGormがPropertyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PropertyRepository = (*propertyGorm)(nil)

// NewPropertyGorm は指定されたgorm.DB接続でpropertyGormの新しいインスタンスを生成します。
func NewPropertyGorm(db *gorm.DB) *propertyGorm {
	return &propertyGorm{db: db}
}

// Create は物件を追加し、採番されたIDとタイムスタンプを p に反映します。
func (r *propertyGorm) Create(ctx context.Context, p *entity.Property) error {
	m := PropertyModelFromEntity(p)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByID はIDで物件を取得します。
// 存在しない場合、usecase.ErrPropertyNotFoundを返します。
func (r *propertyGorm) FindByID(ctx context.Context, id uint) (*entity.Property, error) {
	var m PropertyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPropertyNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List は作成日時の新しい順に物件を返します。
func (r *propertyGorm) List(ctx context.Context, q usecase.ListQuery) ([]entity.Property, int64, error) {
	base := r.db.WithContext(ctx).Model(&PropertyModel{})
	if q.OwnerID != "" {
		base = base.Where("user_id = ?", q.OwnerID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []PropertyModel
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]entity.Property, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToEntity())
	}
	return out, total, nil
}

// Count は全物件数を返します。
func (r *propertyGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&PropertyModel{}).Count(&n).Error
	return n, err
}

// UpdateOwned は id と user_id が一致する行を更新します。
// 所有者の変更はできません。一致する行がない場合 usecase.ErrPropertyNotFound を返します。
func (r *propertyGorm) UpdateOwned(ctx context.Context, p *entity.Property) error {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&PropertyModel{}).
		Where("id = ? AND user_id = ?", p.ID, p.UserID).
		Updates(map[string]any{
			"title":       p.Title,
			"description": p.Description,
			"price":       p.Price,
			"location":    p.Location,
			"images":      MediaList(p.Images),
			"updated_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPropertyNotFound
	}
	p.UpdatedAt = now
	return nil
}

// DeleteOwned は id と user_id が一致する行を削除します。
func (r *propertyGorm) DeleteOwned(ctx context.Context, id uint, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&PropertyModel{}).Error
}
