package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "estate_backend/internal/feature/auth/adapters"
	"estate_backend/internal/feature/auth/usecase"
	"estate_backend/internal/platform/session"
)

// NewSessionRepository はSessionRepositoryの実装を生成します。
// Redisが利用可能ならRedis版を、そうでなければ session テーブルを使います。
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionGorm(db)
}
