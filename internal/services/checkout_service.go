package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lojinha/internal/models"
	"lojinha/internal/notification"
	"lojinha/internal/repositories"
)

// ReceiptPublisher hands a serialized receipt event to the notification
// queue.
type ReceiptPublisher interface {
	Publish(body []byte) error
}

// Submission is a validated checkout payload. Field values arrive sanitized
// and validated by the handler.
type Submission struct {
	CPF       string
	CelNumber string
	Adress    string
	Payment   string
	Total     int64
	Cart      []models.CartLine
}

// CheckoutService orchestrates the checkout flow: session resolution, order
// persistence with inventory decrement, and receipt dispatch.
type CheckoutService struct {
	checkoutRepo repositories.CheckoutRepository
	productRepo  repositories.ProductRepository
	sessionRepo  repositories.SessionRepository
	publisher    ReceiptPublisher
}

// NewCheckoutService creates a new CheckoutService. The publisher may be nil,
// in which case receipt events are skipped with a log line.
func NewCheckoutService(checkoutRepo repositories.CheckoutRepository, productRepo repositories.ProductRepository, sessionRepo repositories.SessionRepository, publisher ReceiptPublisher) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		productRepo:  productRepo,
		sessionRepo:  sessionRepo,
		publisher:    publisher,
	}
}

// Checkout resolves the session, persists the order together with every cart
// line's inventory decrement, and queues the email receipt. Nothing is
// persisted when the token resolves no session, when a line references an
// unknown product, or when a decrement would oversell.
func (s *CheckoutService) Checkout(token string, sub Submission) (*models.CheckoutOrder, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}

	// Load each line's product up front: the receipt needs name and unit
	// price, and a vanished product is cheaper to report before the
	// transaction starts. The transaction re-checks existence either way.
	items := make([]notification.ReceiptItem, 0, len(sub.Cart))
	for _, line := range sub.Cart {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, notification.ReceiptItem{
			Name:     product.Name,
			Quantity: line.Quantity,
			Price:    product.Price,
		})
	}

	order := &models.CheckoutOrder{
		ClientName: session.User.Name,
		UserID:     session.UserID,
		CPF:        sub.CPF,
		CelNumber:  sub.CelNumber,
		Date:       time.Now(),
		Adress:     sub.Adress,
		Payment:    sub.Payment,
		Total:      sub.Total,
	}

	if err := s.checkoutRepo.Create(order, sub.Cart); err != nil {
		return nil, fmt.Errorf("failed to create checkout order: %w", err)
	}

	s.publishReceipt(session, order, items)

	return order, nil
}

// publishReceipt queues the receipt event. Failures are logged and swallowed;
// they never affect the checkout outcome.
func (s *CheckoutService) publishReceipt(session *models.Session, order *models.CheckoutOrder, items []notification.ReceiptItem) {
	if s.publisher == nil {
		log.Println("Receipt publisher is not configured. Skipping receipt dispatch.")
		return
	}

	event := notification.ReceiptEvent{
		OrderID:    order.ID,
		Email:      session.User.Email,
		ClientName: order.ClientName,
		Date:       order.Date,
		Items:      items,
		Total:      order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal receipt event for order %d: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish(body); err != nil {
		log.Printf("Warning: failed to publish receipt event for order %d: %v", order.ID, err)
		return
	}
	log.Printf("Queued receipt event for order %d", order.ID)
}
