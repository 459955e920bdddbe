package adapters

import (
	"time"

	"user_backend/internal/feature/user/domain/entity"
)

// UserModel is the GORM model for the users table.
// Timestamps come from the entity, so GORM's automatic tracking is disabled.
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     *string   `gorm:"size:255;uniqueIndex"`
	Balance   float64   `gorm:"not null"`
	Role      string    `gorm:"size:32;not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return entity.NewUser(m.ID, m.Name, copyEmail(m.Email),
		entity.WithBalance(m.Balance),
		entity.WithRole(entity.Role(m.Role)),
		entity.WithActive(m.IsActive),
		entity.WithCreatedAt(m.CreatedAt),
		entity.WithUpdatedAt(m.UpdatedAt),
	)
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     copyEmail(u.Email()),
		Balance:   u.Balance(),
		Role:      string(u.Role()),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// cloneWithID returns a copy of u carrying the given ID.
func cloneWithID(u *entity.User, id uint) *entity.User {
	return entity.NewUser(id, u.Name(), copyEmail(u.Email()),
		entity.WithBalance(u.Balance()),
		entity.WithRole(u.Role()),
		entity.WithActive(u.IsActive()),
		entity.WithCreatedAt(u.CreatedAt()),
		entity.WithUpdatedAt(u.UpdatedAt()),
	)
}

func copyEmail(email *string) *string {
	if email == nil {
		return nil
	}
	v := *email
	return &v
}
