// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

// Domain errors for user persistence.
// A missing user is not an error: repositories return a nil user instead.
var (
	// ErrEmailAlreadyExists indicates that another user already owns the email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidUser indicates that a nil user was passed to a repository.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidUserID indicates an ID the store cannot hold or that no free ID is left.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidRole indicates a role outside the known set.
	ErrInvalidRole = errors.New("invalid role")
)
