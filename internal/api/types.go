// Package api はHTTPレスポンス/リクエストの共通型を定義します。
package api

import "time"

// ErrorResponse は全エンドポイント共通のエラーレスポンスです。
// Fields はバリデーションエラー時のみ、フィールド名→メッセージで設定されます。
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse は本文を持たない操作の成功レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionResponse はサインアップ/サインイン成功時のレスポンスです。
type SessionResponse struct {
	User        UserResponse `json:"user"`
	Token       string       `json:"token"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

// UserResponse は認証済みユーザーの公開情報です。
type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"emailVerified"`
}

// PropertyResponse は物件1件のレスポンスです。
type PropertyResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	Cover       string    `json:"cover,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PropertyListResponse はページング付きの物件一覧レスポンスです。
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// DashboardResponse はダッシュボード概要のレスポンスです。
type DashboardResponse struct {
	Welcome         string `json:"welcome"`
	TotalProperties int64  `json:"totalProperties"`
}

// UploadResponse は /api/upload のレスポンスです。
type UploadResponse struct {
	FileURLs []string      `json:"fileUrls"`
	Errors   []UploadError `json:"errors,omitempty"`
}

// UploadError は個別ファイルの拒否・失敗理由です。
type UploadError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// OptimizeResponse は /api/ai-optimize のレスポンスです。
type OptimizeResponse struct {
	OptimizedText string `json:"optimizedText"`
}

// UploadErrorResponse は全ファイルが検証で拒否された場合のレスポンスです。
type UploadErrorResponse struct {
	Error  string        `json:"error"`
	Errors []UploadError `json:"errors"`
}
