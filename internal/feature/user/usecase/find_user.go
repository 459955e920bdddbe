// Package usecase contains the application entry points of the user feature.
package usecase

import (
	"context"

	"user_backend/internal/feature/user/domain/entity"
)

// UserFinder looks users up by ID.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (service).
type UserFinder interface {
	FindUserByID(ctx context.Context, userID uint) (*entity.User, error)
}

// FindUser is the "find user by id" use case.
type FindUser struct {
	users UserFinder
}

// NewFindUser creates a new FindUser.
func NewFindUser(users UserFinder) *FindUser {
	return &FindUser{users: users}
}

// Execute returns the user with the given ID, or nil if it does not exist.
func (uc *FindUser) Execute(ctx context.Context, userID uint) (*entity.User, error) {
	return uc.users.FindUserByID(ctx, userID)
}
