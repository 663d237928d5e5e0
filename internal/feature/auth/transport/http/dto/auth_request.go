// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SignUpReq は /api/auth/sign-up のリクエストボディです。
type SignUpReq struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,min=10"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignInReq は /api/auth/sign-in のリクエストボディです。
type SignInReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailReq は /api/auth/verify-email のリクエストボディです。
type VerifyEmailReq struct {
	Token string `json:"token" binding:"required"`
}
