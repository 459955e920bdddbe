// Package adapters provides repository implementations for the user feature.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/domain/repository"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// userGorm is a GORM implementation of the UserRepository interface.
// It works with both the PostgreSQL and the SQLite driver.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ repository.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// FindByID retrieves a user by ID. It returns (nil, nil) if the user does not exist.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Save inserts or updates the user.
// The database assigns the ID when the user has none.
// It returns domain.ErrEmailAlreadyExists if another user owns the same email.
func (r *userGorm) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	if u == nil {
		return nil, domain.ErrInvalidUser
	}
	if !u.Role().Valid() {
		return nil, domain.ErrInvalidRole
	}
	model := UserModelFromEntity(u)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isEmailConflict(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return model.ToEntity(), nil
}

// Delete removes a user by ID. Missing users are ignored.
func (r *userGorm) Delete(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", userID).Error
}

// FindAll returns every user ordered by ID.
func (r *userGorm) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = models[i].ToEntity()
	}
	return users, nil
}

// isEmailConflict reports whether err is a unique violation on the email column.
// Other unique violations, such as a primary key collision, are not email conflicts.
// Drivers must run without gorm's TranslateError so the constraint stays visible.
func isEmailConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email")
	}
	// SQLite names the column: "UNIQUE constraint failed: users.email"
	return strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}
