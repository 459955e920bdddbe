// Package service implements the application services of the user feature.
package service

import (
	"context"

	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/domain/repository"
)

// UserService coordinates user operations on top of a UserRepository.
// It holds no state besides the repository and adds no behavior to it.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// FindUserByID returns the user with the given ID, or nil if it does not exist.
func (s *UserService) FindUserByID(ctx context.Context, userID uint) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

// CreateUser persists the user and returns what the repository stored.
func (s *UserService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.users.Save(ctx, user)
}

// ListUsers returns every stored user.
func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.users.FindAll(ctx)
}

// DeleteUser removes the user with the given ID.
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	return s.users.Delete(ctx, userID)
}
