package repositories

import (
	"fmt"
	"sync"

	"lojinha/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users   map[uint]models.User
	byEmail map[string]uint
	nextID  uint
	mu      sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[uint]models.User),
		byEmail: make(map[string]uint),
		nextID:  1,
	}
}

// Create adds a new user unless the email is already registered. The check
// and the insert happen under one lock, matching the store-level conditional
// insert of the GORM implementation.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return fmt.Errorf("email %s: %w", user.Email, ErrEmailTaken)
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

// GetByEmail returns a user by their email.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	user := r.users[id]
	return &user, nil
}

// GetByID returns a user by their ID.
func (r *MemoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %d not found", id)
	}
	return &user, nil
}
