// Package dto はlistingcopyフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "estate_backend/internal/feature/listingcopy/domain/entity"

// OptimizeReq は /api/ai-optimize のリクエストボディです。全項目任意です。
type OptimizeReq struct {
	Title         string   `json:"title" binding:"max=255"`
	Description   string   `json:"description" binding:"max=5000"`
	Price         int64    `json:"price" binding:"gte=0"`
	Location      string   `json:"location" binding:"max=255"`
	PropertyType  string   `json:"propertyType" binding:"max=64"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms     int      `json:"bathrooms" binding:"gte=0"`
	SquareFootage int      `json:"squareFootage" binding:"gte=0"`
	YearBuilt     int      `json:"yearBuilt" binding:"gte=0"`
	Amenities     []string `json:"amenities" binding:"max=50"`
	Features      []string `json:"features" binding:"max=50"`
}

// ToFacts はリクエストをドメインの Facts に変換します。
func (r OptimizeReq) ToFacts() entity.Facts {
	return entity.Facts{
		Title:         r.Title,
		Description:   r.Description,
		Price:         r.Price,
		Location:      r.Location,
		PropertyType:  r.PropertyType,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		SquareFootage: r.SquareFootage,
		YearBuilt:     r.YearBuilt,
		Amenities:     r.Amenities,
		Features:      r.Features,
	}
}
