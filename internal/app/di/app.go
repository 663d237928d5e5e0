package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "estate_backend/internal/feature/auth/adapters"
	authhandler "estate_backend/internal/feature/auth/transport/handler"
	authusecase "estate_backend/internal/feature/auth/usecase"
	listingcopyhandler "estate_backend/internal/feature/listingcopy/transport/handler"
	listingcopyusecase "estate_backend/internal/feature/listingcopy/usecase"
	mediahandler "estate_backend/internal/feature/media/transport/handler"
	mediausecase "estate_backend/internal/feature/media/usecase"
	propertyhandler "estate_backend/internal/feature/property/transport/handler"
	propertyusecase "estate_backend/internal/feature/property/usecase"
	platformhandler "estate_backend/internal/platform/http/handler"
	jwtmw "estate_backend/internal/platform/jwt"
)

// App はルーターが必要とするハンドラー群です。
type App struct {
	Health   *platformhandler.HealthHandler
	Auth     *authhandler.AuthHandler
	Sessions *authusecase.SessionProvider
	Property *propertyhandler.PropertyHandler
	Upload   *mediahandler.UploadHandler
	Optimize *listingcopyhandler.OptimizeHandler
}

// NewApp は全フィーチャーを組み立てます。返り値の cleanup で外部クライアントを解放します。
func NewApp(ctx context.Context, cfg Config, jwtCfg jwtmw.Config, db *gorm.DB, rdb *redis.Client) (*App, func(), error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	accountRepo := authadapters.NewAccountGorm(db)
	verificationRepo := authadapters.NewVerificationGorm(db)
	sessionRepo := NewSessionRepository(rdb, db)
	propertyRepo := NewPropertyRepository(db, rdb, cfg.CacheTTL)

	// 外部サービス
	screener, closeScreener := NewScreener(ctx, cfg.MediaScreening)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo, accountRepo, sessionRepo, verificationRepo,
		jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration),
		authadapters.NewLogVerificationSender(cfg.AppBaseURL),
		cfg.SessionTTL,
	)
	sessions := authusecase.NewSessionProvider(sessionRepo, userRepo, jwtmw.NewVerifier(jwtCfg.Secret), cfg.SessionCookieName)
	propertyUC := propertyusecase.NewPropertyUsecase(propertyRepo)
	mediaUC := mediausecase.NewMediaUsecase(NewMediaStore(), screener, mediausecase.DefaultConcurrency)
	copyUC := listingcopyusecase.NewListingCopyUsecase(NewTextGenerator(ctx), NewAIRateLimiter(cfg.AIRateLimit))

	// Handler
	app := &App{
		Health:   platformhandler.NewHealthHandler(sqlDB),
		Auth:     authhandler.NewAuthHandler(authUC, authhandler.CookieConfig{Name: cfg.SessionCookieName, Secure: cfg.SessionCookieSecure}),
		Sessions: sessions,
		Property: propertyhandler.NewPropertyHandler(propertyUC),
		Upload:   mediahandler.NewUploadHandler(mediaUC),
		Optimize: listingcopyhandler.NewOptimizeHandler(copyUC),
	}
	return app, closeScreener, nil
}
