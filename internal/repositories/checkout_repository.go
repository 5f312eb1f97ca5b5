package repositories

import (
	"errors"

	"lojinha/internal/models"
)

// ErrInsufficientStock is reported when a cart line's decrement would drive a
// product's available quantity negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// CheckoutRepository defines the interface for order persistence.
type CheckoutRepository interface {
	// Create persists the order and applies every cart line's inventory
	// decrement as one atomic unit: either the order row and all
	// decrements become visible together, or nothing does. A line
	// referencing an unknown product fails with ErrProductNotFound; one
	// that would oversell fails with ErrInsufficientStock.
	Create(order *models.CheckoutOrder, lines []models.CartLine) error
}
