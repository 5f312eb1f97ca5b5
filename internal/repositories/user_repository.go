package repositories

import (
	"errors"

	"lojinha/internal/models"
)

// ErrEmailTaken is reported when a conditional insert finds the email already
// registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts the user only if its email is not already present,
	// returning ErrEmailTaken otherwise. The check and the insert are a
	// single store-level operation.
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
