// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	useradapters "user_backend/internal/feature/user/adapters"
	"user_backend/internal/feature/user/domain/repository"
	"user_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// A nil db selects the in-memory store, otherwise the GORM store is used.
// If Redis is available, the store is wrapped with the caching decorator.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration, namespace string) repository.UserRepository {
	var users repository.UserRepository
	if db != nil {
		users = useradapters.NewUserGorm(db)
	} else {
		users = useradapters.NewUserMemory()
	}

	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, users, namespace)
	}
	return users
}
