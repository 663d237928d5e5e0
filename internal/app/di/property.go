package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	propertyadapters "estate_backend/internal/feature/property/adapters"
	"estate_backend/internal/feature/property/usecase"
	"estate_backend/internal/platform/cache"
)

// NewPropertyRepository はGORMリポジトリをRedisキャッシュでラップして返します。
// rdb が nil の場合キャッシュは素通しになります。
func NewPropertyRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.PropertyRepository {
	return cache.NewCachingPropertyRepository(rdb, ttl, propertyadapters.NewPropertyGorm(db), "properties")
}
