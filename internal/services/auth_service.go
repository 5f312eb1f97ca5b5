package services

import (
	"errors"
	"fmt"
	"strings"

	"lojinha/internal/models"
	"lojinha/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong
// password, without revealing which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles business logic for registration, login and session
// resolution.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Register hashes the user's password and saves the account. The email is
// lowercased before the conditional insert so the uniqueness check is
// case-insensitive.
func (s *AuthService) Register(user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates a user and mints a new session, returning its opaque
// bearer token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(email))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	session := &models.Session{
		UserID: user.ID,
		Token:  uuid.New().String(),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return session.Token, nil
}

// Logout deletes the session behind the token. A token no session matches
// reports repositories.ErrSessionNotFound.
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}

// Resolve maps a bearer token to its session and owning user. There is no
// expiry check: a session is valid until logout removes it.
func (s *AuthService) Resolve(token string) (*models.Session, error) {
	return s.sessionRepo.GetByToken(token)
}
