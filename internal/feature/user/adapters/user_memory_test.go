package adapters

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
)

func TestUserMemory_SaveAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserMemory()

	saved, err := repo.Save(ctx, entity.NewUser(0, "Alice", strPtr("alice@example.com")))
	require.NoError(t, err)
	assert.Equal(t, uint(1), saved.ID())

	found, err := repo.FindByID(ctx, saved.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name())

	// Mutating the returned copy must not change the stored user.
	found.Deactivate()
	again, err := repo.FindByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.True(t, again.IsActive())
}

func TestUserMemory_FindByID_Missing(t *testing.T) {
	t.Parallel()

	found, err := NewUserMemory().FindByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserMemory_Save(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, repo *userMemory)
		input   *entity.User
		wantID  uint
		wantErr error
	}{
		{
			name:   "caller supplied ID is kept",
			input:  entity.NewUser(10, "Bob", nil),
			wantID: 10,
		},
		{
			name: "assigned IDs continue after the highest supplied ID",
			setup: func(t *testing.T, repo *userMemory) {
				_, err := repo.Save(context.Background(), entity.NewUser(10, "Bob", nil))
				require.NoError(t, err)
			},
			input:  entity.NewUser(0, "Carol", nil),
			wantID: 11,
		},
		{
			name: "update keeps the email of the same user",
			setup: func(t *testing.T, repo *userMemory) {
				_, err := repo.Save(context.Background(), entity.NewUser(5, "Dave", strPtr("dave@example.com")))
				require.NoError(t, err)
			},
			input:  entity.NewUser(5, "David", strPtr("dave@example.com")),
			wantID: 5,
		},
		{
			name: "duplicate email",
			setup: func(t *testing.T, repo *userMemory) {
				_, err := repo.Save(context.Background(), entity.NewUser(0, "Erin", strPtr("same@example.com")))
				require.NoError(t, err)
			},
			input:   entity.NewUser(0, "Frank", strPtr("same@example.com")),
			wantErr: domain.ErrEmailAlreadyExists,
		},
		{
			name:    "max uint ID is rejected",
			input:   entity.NewUser(math.MaxUint, "Mallory", nil),
			wantErr: domain.ErrInvalidUserID,
		},
		{
			name: "highest usable ID leaves no ID to assign",
			setup: func(t *testing.T, repo *userMemory) {
				_, err := repo.Save(context.Background(), entity.NewUser(math.MaxUint-1, "Last", nil))
				require.NoError(t, err)
			},
			input:   entity.NewUser(0, "Next", nil),
			wantErr: domain.ErrInvalidUserID,
		},
		{
			name:    "unknown role",
			input:   entity.NewUser(0, "Root", nil, entity.WithRole("ROOT")),
			wantErr: domain.ErrInvalidRole,
		},
		{
			name:    "nil user",
			input:   nil,
			wantErr: domain.ErrInvalidUser,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewUserMemory()
			if tt.setup != nil {
				tt.setup(t, repo)
			}

			saved, err := repo.Save(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, saved.ID())
		})
	}
}

func TestUserMemory_Save_RejectedMaxIDDoesNotDisturbAssignment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserMemory()

	_, err := repo.Save(ctx, entity.NewUser(math.MaxUint, "Mallory", nil))
	require.ErrorIs(t, err, domain.ErrInvalidUserID)

	first, err := repo.Save(ctx, entity.NewUser(0, "Alice", nil))
	require.NoError(t, err)
	second, err := repo.Save(ctx, entity.NewUser(0, "Bob", nil))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID())
	assert.Equal(t, uint(2), second.ID())

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserMemory_DeleteAndFindAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserMemory()
	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Save(ctx, entity.NewUser(0, name, nil))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, 2))
	require.NoError(t, repo.Delete(ctx, 99), "deleting a missing user is a no-op")

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(1), users[0].ID())
	assert.Equal(t, uint(3), users[1].ID())
}

func TestUserMemory_ConcurrentSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, entity.NewUser(0, "worker", nil))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 50)
}
