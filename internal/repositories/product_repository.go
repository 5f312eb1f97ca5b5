package repositories

import (
	"errors"

	"lojinha/internal/models"
)

// ErrProductNotFound is reported for lookups and decrements that reference a
// product id not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	// Search returns products whose name contains the pattern,
	// case-insensitively. An empty pattern returns the full catalog.
	Search(namePattern string) ([]models.Product, error)
	Create(product *models.Product) error
}
