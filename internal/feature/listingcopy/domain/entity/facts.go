// Package entity はlistingcopyフィーチャーのドメインモデルを定義します。
package entity

import "strings"

// Facts は説明文生成に使う物件情報です。ゼロ値の項目はプロンプトに含めません。
type Facts struct {
	Title         string
	Description   string
	Price         int64
	Location      string
	PropertyType  string // apartment, house, villa, condo など
	Bedrooms      int
	Bathrooms     int
	SquareFootage int
	YearBuilt     int
	Amenities     []string
	Features      []string
}

// HasMinimum は説明文、またはタイトルと所在地の両方があるかを返します。
func (f Facts) HasMinimum() bool {
	if strings.TrimSpace(f.Description) != "" {
		return true
	}
	return strings.TrimSpace(f.Title) != "" && strings.TrimSpace(f.Location) != ""
}
