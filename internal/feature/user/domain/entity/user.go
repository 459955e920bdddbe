// Package entity defines the domain entities for the user feature.
package entity

import "time"

// Role is the authorization role attached to a user.
type Role string

const (
	// RoleUser is the default role for every user.
	RoleUser Role = "USER"
)

// Valid reports whether r belongs to the closed set of known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser:
		return true
	}
	return false
}

// User represents a person record.
// The ID has no setter; it is supplied by the caller or assigned by the repository on Save.
type User struct {
	id        uint
	name      string
	email     *string
	balance   float64
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// Option overrides one of the defaults applied by NewUser.
type Option func(*User)

// WithBalance sets the account balance.
func WithBalance(balance float64) Option {
	return func(u *User) { u.balance = balance }
}

// WithRole sets the role.
func WithRole(role Role) Option {
	return func(u *User) { u.role = role }
}

// WithActive sets the active flag.
func WithActive(active bool) Option {
	return func(u *User) { u.isActive = active }
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(t time.Time) Option {
	return func(u *User) { u.createdAt = t }
}

// WithUpdatedAt sets the last update timestamp.
func WithUpdatedAt(t time.Time) Option {
	return func(u *User) { u.updatedAt = t }
}

// NewUser creates a fully formed User.
// Unless overridden, the balance is 0, the role is RoleUser, the user is active
// and both timestamps are set to the moment of construction.
// A nil email means the user has no email.
func NewUser(id uint, name string, email *string, opts ...Option) *User {
	u := &User{
		id:        id,
		name:      name,
		email:     email,
		balance:   0,
		role:      RoleUser,
		isActive:  true,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Activate marks the user as active.
// TODO: decide whether activation should refresh updatedAt; left untouched until the intended behavior is confirmed.
func (u *User) Activate() {
	u.isActive = true
}

// Deactivate marks the user as inactive.
func (u *User) Deactivate() {
	u.isActive = false
}

// ID returns the user's identifier.
func (u *User) ID() uint { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the email address, or nil if the user has none.
func (u *User) Email() *string { return u.email }

// Balance returns the account balance.
func (u *User) Balance() float64 { return u.balance }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// IsActive reports whether the user is active.
func (u *User) IsActive() bool { return u.isActive }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last update timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
