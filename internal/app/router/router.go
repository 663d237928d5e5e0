// Package router はHTTPルーティングを定義します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"estate_backend/internal/app/di"
	"estate_backend/internal/feature/auth/transport/middleware"
	webhookhandler "estate_backend/internal/feature/webhook/transport/handler"
)

// LoginPath は未ログインで /dashboard にアクセスした際のリダイレクト先です。
const LoginPath = "/login"

// DashboardPrefix はログイン必須のページルートの接頭辞です。
const DashboardPrefix = "/dashboard"

// NewRouter はルーターを生成します。corsOrigins が空ならCORSヘッダーは付けません。
func NewRouter(app *di.App, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/healthz", app.Health.Health)
	r.HEAD("/healthz", app.Health.Health)

	// 以降は全リクエストでセッションを解決（なくても通過）
	r.Use(middleware.LoadSession(app.Sessions))
	// /dashboard 配下は未登録パスも含め、未ログインならログイン画面へリダイレクト
	r.Use(middleware.RedirectUnderPrefix(DashboardPrefix, LoginPath))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/sign-up", app.Auth.SignUp)
		auth.POST("/sign-in", app.Auth.SignIn)
		auth.POST("/sign-out", app.Auth.SignOut)
		auth.GET("/me", middleware.RequireSession(), app.Auth.Me)
		auth.GET("/verify-email", app.Auth.VerifyEmail)
		auth.POST("/verify-email", app.Auth.VerifyEmail)

		// 参照は認証不要
		api.GET("/properties", app.Property.List)
		api.GET("/properties/:id", app.Property.Get)

		// 認証必須のルート
		protected := api.Group("/")
		protected.Use(middleware.RequireSession())
		{
			protected.POST("/properties", app.Property.Create)
			protected.PUT("/properties/:id", app.Property.Update)
			protected.DELETE("/properties/:id", app.Property.Delete)
			protected.POST("/upload", app.Upload.Upload)
		}

		api.POST("/ai-optimize", app.Optimize.Optimize)
		api.POST("/webhooks", webhookhandler.Receive)
		api.GET("/webhooks", webhookhandler.Status)
	}

	dashboard := r.Group(DashboardPrefix)
	{
		dashboard.GET("", app.Property.Overview)
		dashboard.GET("/properties", app.Property.List)
		dashboard.GET("/properties/:id", app.Property.Get)
	}

	return r
}
