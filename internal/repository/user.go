package repository

import (
	"sync"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	CountUsers() (int, error)
}

// userRepository keeps identities in memory for the lifetime of the
// process. The mutex makes check-then-insert atomic, so concurrent
// registrations of the same username produce exactly one winner.
type userRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]models.User)}
}

func (r *userRepository) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return ErrDuplicateUser
	}

	stored := *user
	stored.Roles = append([]string(nil), user.Roles...)
	r.users[user.Username] = stored
	return nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}

	user := stored
	user.Roles = append([]string(nil), stored.Roles...)
	return &user, nil
}

func (r *userRepository) CountUsers() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users), nil
}
