package repositories

import (
	"fmt"
	"strings"
	"sync"

	"lojinha/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Search returns products whose name contains the pattern, ignoring case.
func (r *MemoryProductRepository) Search(namePattern string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pattern := strings.ToLower(namePattern)
	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if pattern == "" || strings.Contains(strings.ToLower(p.Name), pattern) {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// Create adds a new product.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// decrementAll applies every line's decrement under one lock: all lines are
// checked before any quantity changes, so a failing line leaves the catalog
// untouched.
func (r *MemoryProductRepository) decrementAll(lines []models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range lines {
		product, ok := r.products[line.ProductID]
		if !ok {
			return fmt.Errorf("product %d: %w", line.ProductID, ErrProductNotFound)
		}
		if product.AvailableQuantity < line.Quantity {
			return fmt.Errorf("product %d: %w", line.ProductID, ErrInsufficientStock)
		}
	}
	for _, line := range lines {
		product := r.products[line.ProductID]
		product.AvailableQuantity -= line.Quantity
		r.products[line.ProductID] = product
	}
	return nil
}
