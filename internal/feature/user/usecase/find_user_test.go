package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"user_backend/internal/feature/user/adapters"
	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/service"
	"user_backend/internal/feature/user/usecase"
)

// mockUserFinder is a mock implementation of usecase.UserFinder.
type mockUserFinder struct {
	FindUserByIDFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockUserFinder) FindUserByID(ctx context.Context, userID uint) (*entity.User, error) {
	if m.FindUserByIDFunc != nil {
		return m.FindUserByIDFunc(ctx, userID)
	}
	return nil, nil
}

func TestNewFindUser(t *testing.T) {
	t.Parallel()

	uc := usecase.NewFindUser(&mockUserFinder{})

	assert.NotNil(t, uc, "usecase should not be nil")
}

func TestFindUser_Execute(t *testing.T) {
	t.Parallel()

	found := entity.NewUser(4, "Dave", nil)
	lookupErr := errors.New("lookup failed")

	tests := []struct {
		name     string
		findFunc func(ctx context.Context, userID uint) (*entity.User, error)
		wantUser *entity.User
		wantErr  error
	}{
		{
			name: "success: returns the same user",
			findFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return found, nil
			},
			wantUser: found,
		},
		{
			name: "success: not found propagates as nil",
			findFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return nil, nil
			},
		},
		{
			name: "failure: error is returned unwrapped",
			findFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return nil, lookupErr
			},
			wantErr: lookupErr,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewFindUser(&mockUserFinder{FindUserByIDFunc: tt.findFunc})

			user, err := uc.Execute(context.Background(), 4)

			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Same(t, tt.wantUser, user)
		})
	}
}

// TestFindUser_Execute_ThroughService runs the whole chain down to an in-memory repository.
func TestFindUser_Execute_ThroughService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := adapters.NewUserMemory()
	saved, err := repo.Save(ctx, entity.NewUser(0, "Erin", nil))
	assert.NoError(t, err)

	uc := usecase.NewFindUser(service.NewUserService(repo))

	got, err := uc.Execute(ctx, saved.ID())
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, saved.ID(), got.ID())
		assert.Equal(t, "Erin", got.Name())
	}

	missing, err := uc.Execute(ctx, saved.ID()+100)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
