package di

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	useradapters "user_backend/internal/feature/user/adapters"
	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/platform/cache"
)

func TestNewUserRepository_InMemory(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(nil, nil, time.Minute, "users")
	require.NotNil(t, repo)

	saved, err := repo.Save(context.Background(), entity.NewUser(0, "Alice", nil))
	require.NoError(t, err)
	assert.Equal(t, uint(1), saved.ID())
}

func TestNewUserRepository_Gorm(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&useradapters.UserModel{}))

	repo := NewUserRepository(db, nil, time.Minute, "users")

	_, isCached := repo.(*cache.CachingUserRepository)
	assert.False(t, isCached, "no redis client means no cache")

	found, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestNewUserRepository_WithRedis(t *testing.T) {
	t.Parallel()

	rdb, _ := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	repo := NewUserRepository(nil, rdb, time.Minute, "users")

	_, isCached := repo.(*cache.CachingUserRepository)
	assert.True(t, isCached, "expected the caching decorator")
}
