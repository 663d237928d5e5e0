package adapters

import (
	"time"

	"estate_backend/internal/feature/property/domain/entity"
)

// PropertyModel is the GORM model for the properties table.
type PropertyModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	Price       int64     `gorm:"not null"`
	Location    string    `gorm:"size:255;not null"`
	Images      MediaList `gorm:"not null"`
	UserID      string    `gorm:"size:36;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Owner は properties.user_id -> user.id の外部キー制約を張るためだけのリレーションです。
	Owner *propertyOwner `gorm:"foreignKey:UserID;references:ID"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

// propertyOwner は user テーブルの主キーのみを参照します。
// authフィーチャーのモデルに依存せず外部キーを宣言するために使います。
type propertyOwner struct {
	ID string `gorm:"primaryKey;size:36"`
}

func (propertyOwner) TableName() string {
	return "user"
}

func (m *PropertyModel) ToEntity() *entity.Property {
	return &entity.Property{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Location:    m.Location,
		Images:      []string(m.Images),
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func PropertyModelFromEntity(p *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Images:      MediaList(p.Images),
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
