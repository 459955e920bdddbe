// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

import (
	"time"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
)

// CreateUserReq represents the request body for POST /users.
// The ID is always assigned by the store. Omitted optional fields fall back to the entity defaults.
type CreateUserReq struct {
	Name     string   `json:"name" binding:"required,max=255"`
	Email    *string  `json:"email" binding:"omitempty,email,max=255"`
	Balance  *float64 `json:"balance"`
	Role     string   `json:"role"`
	IsActive *bool    `json:"is_active"`
}

// ToEntity builds the domain user described by the request.
// It returns domain.ErrInvalidRole when the role is not a known one.
func (r CreateUserReq) ToEntity() (*entity.User, error) {
	var opts []entity.Option
	if r.Balance != nil {
		opts = append(opts, entity.WithBalance(*r.Balance))
	}
	if r.Role != "" {
		role := entity.Role(r.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		opts = append(opts, entity.WithRole(role))
	}
	if r.IsActive != nil {
		opts = append(opts, entity.WithActive(*r.IsActive))
	}
	return entity.NewUser(0, r.Name, r.Email, opts...), nil
}

// UserRes is the JSON representation of a user. A missing email is rendered as null.
type UserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Balance   float64   `json:"balance"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserRes converts a domain user to its response form.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Balance:   u.Balance(),
		Role:      string(u.Role()),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// ErrorRes is the body of every error response.
type ErrorRes struct {
	Error string `json:"error"`
}
