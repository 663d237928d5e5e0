// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/usecase"
)

// DefaultTTL is used when no positive ttl is configured.
const DefaultTTL = 5 * time.Minute

// CachingPropertyRepository decorates a PropertyRepository with Redis caching.
// Reads are served from Redis when possible; every mutation invalidates the
// affected detail entry, all list pages and the count.
type CachingPropertyRepository struct {
	inner     usecase.PropertyRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PropertyRepository = (*CachingPropertyRepository)(nil)

// listEntry is the cached form of one list page.
type listEntry struct {
	Items []entity.Property `json:"items"`
	Total int64             `json:"total"`
}

// NewCachingPropertyRepository decorates a PropertyRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "properties".
// A nil rdb disables caching.
func NewCachingPropertyRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PropertyRepository, namespace string) *CachingPropertyRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "properties"
	}
	return &CachingPropertyRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a property and invalidates list pages and the count.
func (c *CachingPropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, nil, true)
	return nil
}

// FindByID checks the cache first then falls back to the database.
func (c *CachingPropertyRepository) FindByID(ctx context.Context, id uint) (*entity.Property, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.detailKey(id)
	var cached entity.Property
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	p, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, p)
	return p, nil
}

// List checks the cache first then falls back to the database.
func (c *CachingPropertyRepository) List(ctx context.Context, q usecase.ListQuery) ([]entity.Property, int64, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, q)
	}

	key := c.listKey(q)
	var cached listEntry
	if c.get(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	items, total, err := c.inner.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	c.set(ctx, key, listEntry{Items: items, Total: total})
	return items, total, nil
}

// Count checks the cache first then falls back to the database.
func (c *CachingPropertyRepository) Count(ctx context.Context) (int64, error) {
	if c.rdb == nil {
		return c.inner.Count(ctx)
	}

	key := c.countKey()
	if n, err := c.rdb.Get(ctx, key).Int64(); err == nil {
		return n, nil
	}

	n, err := c.inner.Count(ctx)
	if err != nil {
		return 0, err
	}
	_ = c.rdb.Set(ctx, key, n, c.ttl).Err()
	return n, nil
}

// UpdateOwned updates the row and invalidates its detail entry and list pages.
func (c *CachingPropertyRepository) UpdateOwned(ctx context.Context, p *entity.Property) error {
	if err := c.inner.UpdateOwned(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, &p.ID, false)
	return nil
}

// DeleteOwned deletes the row and invalidates its detail entry, list pages and the count.
func (c *CachingPropertyRepository) DeleteOwned(ctx context.Context, id uint, ownerID string) error {
	if err := c.inner.DeleteOwned(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, &id, true)
	return nil
}

// get loads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingPropertyRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v under key (best effort).
func (c *CachingPropertyRepository) set(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

// invalidate removes cache entries affected by a mutation. Failures are ignored.
func (c *CachingPropertyRepository) invalidate(ctx context.Context, id *uint, countChanged bool) {
	if c.rdb == nil {
		return
	}
	var keys []string
	if id != nil {
		keys = append(keys, c.detailKey(*id))
	}
	if countChanged {
		keys = append(keys, c.countKey())
	}
	if len(keys) > 0 {
		_ = c.rdb.Del(ctx, keys...).Err()
	}
	_ = c.deleteByPattern(ctx, c.namespace+":list:*")
}

func (c *CachingPropertyRepository) detailKey(id uint) string {
	return fmt.Sprintf("%s:detail:%d", c.namespace, id)
}

func (c *CachingPropertyRepository) listKey(q usecase.ListQuery) string {
	owner := "all"
	if q.OwnerID != "" {
		owner = safe(q.OwnerID)
	}
	return fmt.Sprintf("%s:list:%s:%d:%d", c.namespace, owner, q.Page, q.Limit)
}

func (c *CachingPropertyRepository) countKey() string {
	return c.namespace + ":count"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPropertyRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
