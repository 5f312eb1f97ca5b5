package repositories

import (
	"sync"

	"lojinha/internal/models"
)

// MemorySessionRepository is an in-memory implementation of SessionRepository.
// It resolves the owning user through the user repository it is built with.
type MemorySessionRepository struct {
	sessions map[uint]models.Session
	nextID   uint
	users    UserRepository
	mu       sync.RWMutex
}

// NewMemorySessionRepository creates a new instance of MemorySessionRepository.
func NewMemorySessionRepository(users UserRepository) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[uint]models.Session),
		nextID:   1,
		users:    users,
	}
}

// Create adds a new session.
func (r *MemorySessionRepository) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = r.nextID
	r.nextID++
	r.sessions[session.ID] = *session
	return nil
}

// GetByToken resolves a token to its session with the owning user loaded.
func (r *MemorySessionRepository) GetByToken(token string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if session.Token == token {
			user, err := r.users.GetByID(session.UserID)
			if err != nil {
				return nil, err
			}
			session.User = *user
			return &session, nil
		}
	}
	return nil, ErrSessionNotFound
}

// DeleteByToken removes every session matching the token.
func (r *MemorySessionRepository) DeleteByToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := false
	for id, session := range r.sessions {
		if session.Token == token {
			delete(r.sessions, id)
			deleted = true
		}
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}
