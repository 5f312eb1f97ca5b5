package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"lojinha/internal/models"
	"lojinha/internal/notification"
	"lojinha/internal/repositories"
	"lojinha/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutRepository is a mock implementation of repositories.CheckoutRepository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) Create(order *models.CheckoutOrder, lines []models.CartLine) error {
	args := m.Called(order, lines)
	return args.Error(0)
}

// MockReceiptPublisher is a mock implementation of services.ReceiptPublisher
type MockReceiptPublisher struct {
	mock.Mock
}

func (m *MockReceiptPublisher) Publish(body []byte) error {
	args := m.Called(body)
	return args.Error(0)
}

func testSession() *models.Session {
	return &models.Session{
		ID:     1,
		UserID: 7,
		User:   models.User{ID: 7, Name: "Christian", Email: "christian@teste.com"},
		Token:  "known-token",
	}
}

func testSubmission() services.Submission {
	return services.Submission{
		CPF:       "12345678910",
		CelNumber: "12345678910",
		Adress:    "Rua das Flores, 10",
		Payment:   "Cartão de débito",
		Total:     50000,
		Cart:      []models.CartLine{{ProductID: 3, Quantity: 1}},
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockCheckoutRepository)
	mockPublisher := new(MockReceiptPublisher)
	service := services.NewCheckoutService(mockOrders, mockProducts, mockSessions, mockPublisher)

	mockSessions.On("GetByToken", "known-token").Return(testSession(), nil).Once()
	mockProducts.On("GetByID", uint(3)).
		Return(&models.Product{ID: 3, Name: "Teclado", AvailableQuantity: 700, Price: 10000}, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.CheckoutOrder"), mock.AnythingOfType("[]models.CartLine")).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*models.CheckoutOrder)
			assert.Equal(t, "Christian", order.ClientName)
			assert.Equal(t, uint(7), order.UserID)
			assert.Equal(t, "12345678910", order.CPF)
			assert.Equal(t, "Rua das Flores, 10", order.Adress)
			assert.Equal(t, "Cartão de débito", order.Payment)
			assert.Equal(t, int64(50000), order.Total)
			assert.False(t, order.Date.IsZero())
			order.ID = 42
		}).Return(nil).Once()
	mockPublisher.On("Publish", mock.AnythingOfType("[]uint8")).Run(func(args mock.Arguments) {
		var event notification.ReceiptEvent
		assert.NoError(t, json.Unmarshal(args.Get(0).([]byte), &event))
		assert.Equal(t, uint(42), event.OrderID)
		assert.Equal(t, "christian@teste.com", event.Email)
		assert.Equal(t, int64(50000), event.Total)
		assert.Len(t, event.Items, 1)
		assert.Equal(t, "Teclado", event.Items[0].Name)
		assert.Equal(t, 1, event.Items[0].Quantity)
		assert.Equal(t, int64(10000), event.Items[0].Price)
	}).Return(nil).Once()

	order, err := service.Checkout("known-token", testSubmission())
	assert.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	mockSessions.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestCheckoutService_Checkout_UnknownToken(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockCheckoutRepository)
	service := services.NewCheckoutService(mockOrders, mockProducts, mockSessions, nil)

	mockSessions.On("GetByToken", "unknown-token").Return(nil, repositories.ErrSessionNotFound).Once()

	order, err := service.Checkout("unknown-token", testSubmission())
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_UnknownProduct(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockCheckoutRepository)
	service := services.NewCheckoutService(mockOrders, mockProducts, mockSessions, nil)

	mockSessions.On("GetByToken", "known-token").Return(testSession(), nil).Once()
	mockProducts.On("GetByID", uint(3)).
		Return(nil, fmt.Errorf("product %d: %w", 3, repositories.ErrProductNotFound)).Once()

	order, err := service.Checkout("known-token", testSubmission())
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_InsufficientStock(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockCheckoutRepository)
	service := services.NewCheckoutService(mockOrders, mockProducts, mockSessions, nil)

	mockSessions.On("GetByToken", "known-token").Return(testSession(), nil).Once()
	mockProducts.On("GetByID", uint(3)).
		Return(&models.Product{ID: 3, Name: "Teclado", AvailableQuantity: 0, Price: 10000}, nil).Once()
	mockOrders.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("product %d: %w", 3, repositories.ErrInsufficientStock)).Once()

	order, err := service.Checkout("known-token", testSubmission())
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
	assert.Nil(t, order)
	mockOrders.AssertExpectations(t)
}

func TestCheckoutService_Checkout_PublishFailureIsSwallowed(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockCheckoutRepository)
	mockPublisher := new(MockReceiptPublisher)
	service := services.NewCheckoutService(mockOrders, mockProducts, mockSessions, mockPublisher)

	mockSessions.On("GetByToken", "known-token").Return(testSession(), nil).Once()
	mockProducts.On("GetByID", uint(3)).
		Return(&models.Product{ID: 3, Name: "Teclado", AvailableQuantity: 700, Price: 10000}, nil).Once()
	mockOrders.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	mockPublisher.On("Publish", mock.Anything).Return(fmt.Errorf("broker unavailable")).Once()

	// The checkout result never depends on receipt dispatch
	order, err := service.Checkout("known-token", testSubmission())
	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockPublisher.AssertExpectations(t)
}
