// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/domain/repository"
)

// CachingUserRepository decorates a UserRepository with Redis caching.
// Only FindByID is served from the cache; writes go to the underlying
// repository first and then invalidate the cached entry.
//
// Invalidation is best effort. A FindByID that read the old row before a
// Save and writes it back after the Del leaves that stale copy cached until
// the TTL expires, so the TTL bounds how long readers can see old data.
type CachingUserRepository struct {
	inner     repository.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ repository.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
// A nil rdb disables caching entirely.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner repository.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves a user, checking the cache first then falling back to the repository.
// Absent users are not cached.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var snap userSnapshot
		if err := json.Unmarshal(b, &snap); err == nil {
			return snap.toEntity(), nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the repository
	u, err := c.inner.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(snapshotOf(u)); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("failed to cache user", "user_id", id, "error", err)
		}
	}

	return u, nil
}

// Save persists the user and invalidates its cache entry.
func (c *CachingUserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	saved, err := c.inner.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, saved.ID())
	return saved, nil
}

// Delete removes the user and invalidates its cache entry.
func (c *CachingUserRepository) Delete(ctx context.Context, userID uint) error {
	if err := c.inner.Delete(ctx, userID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// FindAll is not cached.
func (c *CachingUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return c.inner.FindAll(ctx)
}

// invalidate drops the cached entry for id. Failures are logged, not returned.
func (c *CachingUserRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.cacheKey(id)).Err(); err != nil {
		slog.Warn("failed to invalidate cached user", "user_id", id, "error", err)
	}
}

// cacheKey generates the cache key for a user ID.
func (c *CachingUserRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s:%d", safe(c.namespace), id)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
