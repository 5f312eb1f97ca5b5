package repositories

import (
	"errors"
	"fmt"

	"lojinha/internal/models"

	"gorm.io/gorm"
)

// GORMSessionRepository is a GORM implementation of SessionRepository.
type GORMSessionRepository struct {
	db *gorm.DB
}

// NewGORMSessionRepository creates a new instance of GORMSessionRepository.
func NewGORMSessionRepository(db *gorm.DB) *GORMSessionRepository {
	return &GORMSessionRepository{
		db: db,
	}
}

// Create persists a new session.
func (r *GORMSessionRepository) Create(session *models.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken resolves a bearer token to its session, loading the owning user.
// Tokens carry no uniqueness constraint; the first match wins.
func (r *GORMSessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Preload("User").First(&session, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return &session, nil
}

// DeleteByToken removes the session matching the token.
func (r *GORMSessionRepository) DeleteByToken(token string) error {
	res := r.db.Delete(&models.Session{}, "token = ?", token)
	if res.Error != nil {
		return fmt.Errorf("failed to delete session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
