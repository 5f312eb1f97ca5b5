package repositories

import (
	"errors"

	"lojinha/internal/models"
)

// ErrSessionNotFound is reported when no session matches a bearer token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the interface for session data access.
type SessionRepository interface {
	Create(session *models.Session) error
	// GetByToken resolves a bearer token to its session with the owning
	// user loaded, or ErrSessionNotFound.
	GetByToken(token string) (*models.Session, error)
	// DeleteByToken removes the matching session, ErrSessionNotFound if
	// nothing matched.
	DeleteByToken(token string) error
}
