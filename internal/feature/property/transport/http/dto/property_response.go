package dto

import (
	"estate_backend/internal/api"
	"estate_backend/internal/feature/property/domain/entity"
)

// ToPropertyResponse はエンティティをAPIレスポンスに変換します。
func ToPropertyResponse(p *entity.Property) api.PropertyResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return api.PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Images:      images,
		Cover:       p.Cover(),
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
