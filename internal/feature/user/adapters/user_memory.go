package adapters

import (
	"context"
	"math"
	"sort"
	"sync"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/domain/repository"
)

// userMemory is a map-backed implementation of the UserRepository interface.
// Stored users are copied on the way in and out, so callers never share state with the store.
type userMemory struct {
	mu     sync.RWMutex
	users  map[uint]*entity.User
	nextID uint
}

var _ repository.UserRepository = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory user repository.
func NewUserMemory() *userMemory {
	return &userMemory{
		users:  make(map[uint]*entity.User),
		nextID: 1,
	}
}

// FindByID retrieves a user by ID. It returns (nil, nil) if the user does not exist.
func (r *userMemory) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneWithID(u, u.ID()), nil
}

// Save inserts or updates the user, assigning the next free ID when the user has none.
// math.MaxUint is rejected with domain.ErrInvalidUserID.
func (r *userMemory) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	if u == nil {
		return nil, domain.ErrInvalidUser
	}
	if !u.Role().Valid() {
		return nil, domain.ErrInvalidRole
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := u.ID()
	switch {
	case id == math.MaxUint:
		return nil, domain.ErrInvalidUserID
	case id == 0:
		var ok bool
		if id, ok = r.allocateID(); !ok {
			return nil, domain.ErrInvalidUserID
		}
	}
	if email := u.Email(); email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email() != nil && *other.Email() == *email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
	}
	if id >= r.nextID {
		r.nextID = id + 1
	}

	stored := cloneWithID(u, id)
	r.users[id] = stored
	return cloneWithID(stored, id), nil
}

// allocateID returns the lowest free ID at or above nextID.
// math.MaxUint is never handed out, so nextID cannot wrap to 0.
func (r *userMemory) allocateID() (uint, bool) {
	for ; r.nextID < math.MaxUint; r.nextID++ {
		if _, taken := r.users[r.nextID]; !taken {
			return r.nextID, true
		}
	}
	return 0, false
}

// Delete removes a user by ID. Missing users are ignored.
func (r *userMemory) Delete(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, userID)
	return nil
}

// FindAll returns every user ordered by ID.
func (r *userMemory) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.users))
	for id, u := range r.users {
		users = append(users, cloneWithID(u, id))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID() < users[j].ID() })
	return users, nil
}
