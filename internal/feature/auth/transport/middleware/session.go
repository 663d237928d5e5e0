// Package middleware はセッション解決とルート保護のGinミドルウェアを提供します。
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/api"
	"estate_backend/internal/shared/identity"
)

// ContextIdentity はgin.Contextに解決済みIdentityを格納するキーです。
const ContextIdentity = "identity"

// SessionResolver はリクエストから呼び出し元を解決します。
type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*identity.Identity, error)
}

// LoadSession は全リクエストでIdentityを解決してコンテキストに設定します。
// 資格情報がなくてもリクエストは通過させ、ストア障害時のみ500で中断します。
func LoadSession(res SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := res.Resolve(c.Request.Context(), c.Request)
		if err != nil {
			slog.Error("session resolution failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
			return
		}
		if id != nil {
			c.Set(ContextIdentity, id)
		}
		c.Next()
	}
}

// IdentityFrom はLoadSessionが設定したIdentityを返します。未認証ならnilです。
func IdentityFrom(c *gin.Context) *identity.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*identity.Identity)
	return id
}

// RequireSession はAPIルート用で、未認証なら401 {"error":"Unauthorized"}を返します。
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireSessionOrRedirect はページルート用で、未認証なら loginPath へ302リダイレクトします。
func RequireSessionOrRedirect(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectUnderPrefix は prefix 配下の全パス（未登録ルートを含む）を保護します。
// ルーティング前にグローバルで登録するため、404より先に未認証を loginPath へ302で返します。
func RedirectUnderPrefix(prefix, loginPath string) gin.HandlerFunc {
	redirect := RequireSessionOrRedirect(loginPath)
	return func(c *gin.Context) {
		if !underPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}
		redirect(c)
	}
}

// underPrefix は path が prefix そのものか prefix/ 以下なら true を返します。
func underPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/'
}
