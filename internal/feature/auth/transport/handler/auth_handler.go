// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/api"
	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/transport/http/dto"
	"estate_backend/internal/feature/auth/transport/middleware"
	"estate_backend/internal/feature/auth/usecase"
	"estate_backend/internal/shared/identity"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	SignUp(ctx context.Context, in usecase.SignUpInput, client usecase.ClientInfo) (*usecase.AuthResult, error)
	SignIn(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.AuthResult, error)
	SignOut(ctx context.Context, token string) error
	VerifyEmail(ctx context.Context, token string) error
	Me(ctx context.Context, caller *identity.Identity) (*entity.User, error)
}

// CookieConfig はセッションCookieの属性です。
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = usecase.DefaultSessionCookie
	}
	return &AuthHandler{auth: auth, cookie: cookie}
}

func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, s *entity.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, s.Token, maxAge, "/", "", h.cookie.Secure, true)
}

func toUserResponse(u *entity.User) api.UserResponse {
	id := u.Identity()
	return api.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          id.Role,
		EmailVerified: u.EmailVerified,
	}
}

func toSessionResponse(res *usecase.AuthResult) api.SessionResponse {
	return api.SessionResponse{
		User:        toUserResponse(res.User),
		Token:       res.Session.Token,
		AccessToken: res.AccessToken,
		ExpiresAt:   res.Session.ExpiresAt,
	}
}

// SignUp はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400、メール重複時は409を返却
// - 成功時はセッションCookieを設定して201を返却
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationError(err))
		return
	}

	res, err := h.auth.SignUp(c.Request.Context(), usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}, clientInfo(c))
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
		return
	case errors.Is(err, usecase.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	default:
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signup failed"})
		return
	}

	slog.Info("user signup successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	h.setSessionCookie(c, res.Session)
	c.JSON(http.StatusCreated, toSessionResponse(res))
}

// SignIn はユーザーログインAPIエンドポイントを処理します。
// 認証失敗時は理由を区別せず401を返却します。
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationError(err))
		return
	}

	res, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("signin failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("signin failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signin failed"})
		return
	}

	slog.Info("user signin successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	h.setSessionCookie(c, res.Session)
	c.JSON(http.StatusOK, toSessionResponse(res))
}

// SignOut はセッションを削除し、Cookieを失効させます。
func (h *AuthHandler) SignOut(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		slog.Error("signout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signout failed"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "signed out"})
}

// Me は認証済みユーザーの情報を返します。RequireSessionの後段で使用します。
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.auth.Me(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}
		slog.Error("failed to load current user", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

// VerifyEmail はメール確認トークンを消費します。
// トークンはクエリ(?token=)またはJSONボディで受け付けます。
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var req dto.VerifyEmailReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, api.ValidationError(err))
			return
		}
		token = req.Token
	}

	err := h.auth.VerifyEmail(c.Request.Context(), token)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, api.MessageResponse{Message: "email verified"})
	case errors.Is(err, usecase.ErrVerificationNotFound),
		errors.Is(err, usecase.ErrVerificationExpired),
		errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid or expired token"})
	default:
		slog.Error("email verification failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
