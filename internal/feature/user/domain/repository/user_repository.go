// Package repository defines repository interfaces for the user feature.
package repository

import (
	"context"

	"user_backend/internal/feature/user/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Any store (in-memory, SQL, remote) can implement it.
type UserRepository interface {
	// FindByID retrieves the user with the given ID.
	// It returns (nil, nil) when no such user exists; the error is reserved for storage failures.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Save inserts or updates the user and returns the persisted representation.
	// A zero ID makes the store assign one.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete removes the user with the given ID.
	// Deleting a user that does not exist is not an error.
	Delete(ctx context.Context, userID uint) error

	// FindAll returns every stored user.
	FindAll(ctx context.Context) ([]*entity.User, error)
}
