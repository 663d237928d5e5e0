// Package dto はpropertyフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// PropertyReq は物件作成・更新のリクエストボディです（JSONまたはフォーム）。
type PropertyReq struct {
	Title       string   `json:"title" form:"title" binding:"required,min=5,max=255"`
	Description string   `json:"description" form:"description" binding:"required,min=20"`
	Price       int64    `json:"price" form:"price" binding:"required,gt=0"`
	Location    string   `json:"location" form:"location" binding:"required,min=3,max=255"`
	Images      []string `json:"images" form:"images" binding:"omitempty,dive,url"`
}

// ListQuery は一覧取得のクエリパラメータです。
type ListQuery struct {
	Page  int  `form:"page" binding:"omitempty,min=1"`
	Limit int  `form:"limit" binding:"omitempty,min=1,max=100"`
	Mine  bool `form:"mine"`
}
