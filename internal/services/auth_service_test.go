package services_test

import (
	"errors"
	"fmt"
	"testing"

	"lojinha/internal/models"
	"lojinha/internal/repositories"
	"lojinha/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of repositories.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(token string) (*models.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	// Successful registration: email is lowercased, password is hashed
	user := &models.User{
		Name:     "Christian",
		Email:    "Christian@Teste.com",
		Password: "ChristianPassword",
	}
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.User)
		assert.Equal(t, "christian@teste.com", created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("ChristianPassword")))
	}).Return(nil).Once()

	err := authService.Register(user)
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)

	// Duplicate email surfaces ErrEmailTaken through the wrap
	dup := &models.User{Name: "Christian", Email: "christian@teste.com", Password: "ChristianPassword"}
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("email %s: %w", dup.Email, repositories.ErrEmailTaken)).Once()

	err = authService.Register(dup)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrEmailTaken))
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("ChristianPassword"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       7,
		Name:     "Christian",
		Email:    "christian@teste.com",
		Password: string(hashedPassword),
	}

	// Successful login mints and persists a session token
	mockUsers.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockSessions.On("Create", mock.AnythingOfType("*models.Session")).Run(func(args mock.Arguments) {
		session := args.Get(0).(*models.Session)
		assert.Equal(t, user.ID, session.UserID)
		assert.NotEmpty(t, session.Token)
	}).Return(nil).Once()

	token, err := authService.Login("Christian@Teste.com", "ChristianPassword")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockUsers.AssertExpectations(t)
	mockSessions.AssertExpectations(t)

	// Wrong password: no session is created
	mockUsers.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockSessions.AssertNotCalled(t, "Create", mock.Anything)

	// Unknown email yields the same generic failure
	mockUsers.On("GetByEmail", "nobody@teste.com").
		Return(nil, fmt.Errorf("user with email nobody@teste.com not found")).Once()
	_, err = authService.Login("nobody@teste.com", "ChristianPassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	mockSessions.On("DeleteByToken", "known-token").Return(nil).Once()
	assert.NoError(t, authService.Logout("known-token"))

	mockSessions.On("DeleteByToken", "unknown-token").Return(repositories.ErrSessionNotFound).Once()
	err := authService.Logout("unknown-token")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Resolve(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	session := &models.Session{
		ID:     1,
		UserID: 7,
		User:   models.User{ID: 7, Name: "Christian", Email: "christian@teste.com"},
		Token:  "known-token",
	}
	mockSessions.On("GetByToken", "known-token").Return(session, nil).Once()

	resolved, err := authService.Resolve("known-token")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resolved.UserID)
	assert.Equal(t, "Christian", resolved.User.Name)

	mockSessions.On("GetByToken", "unknown-token").Return(nil, repositories.ErrSessionNotFound).Once()
	_, err = authService.Resolve("unknown-token")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	mockSessions.AssertExpectations(t)
}
