package cache

import (
	"time"

	"user_backend/internal/feature/user/domain/entity"
)

// userSnapshot is the JSON form of a user stored in Redis.
type userSnapshot struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Balance   float64   `json:"balance"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func snapshotOf(u *entity.User) userSnapshot {
	return userSnapshot{
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

func (s userSnapshot) toEntity() *entity.User {
	return entity.NewUser(s.ID, s.Name, s.Email,
		entity.WithBalance(s.Balance),
		entity.WithRole(entity.Role(s.Role)),
		entity.WithActive(s.IsActive),
		entity.WithCreatedAt(s.CreatedAt),
		entity.WithUpdatedAt(s.UpdatedAt),
	)
}
