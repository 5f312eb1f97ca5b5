package repositories

import (
	"sync"

	"lojinha/internal/models"
)

// MemoryCheckoutRepository is an in-memory implementation of
// CheckoutRepository. It shares the product store it decrements against.
type MemoryCheckoutRepository struct {
	orders   map[uint]models.CheckoutOrder
	nextID   uint
	products *MemoryProductRepository
	mu       sync.RWMutex
}

// NewMemoryCheckoutRepository creates a new instance of MemoryCheckoutRepository.
func NewMemoryCheckoutRepository(products *MemoryProductRepository) *MemoryCheckoutRepository {
	return &MemoryCheckoutRepository{
		orders:   make(map[uint]models.CheckoutOrder),
		nextID:   1,
		products: products,
	}
}

// Create applies the decrements first (the batch either fully succeeds or
// leaves the catalog untouched) and only then records the order, mirroring
// the all-or-nothing contract of the transactional implementation.
func (r *MemoryCheckoutRepository) Create(order *models.CheckoutOrder, lines []models.CartLine) error {
	if err := r.products.decrementAll(lines); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = *order
	return nil
}

// GetAll returns every recorded order. Used by tests to assert persistence.
func (r *MemoryCheckoutRepository) GetAll() ([]models.CheckoutOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.CheckoutOrder, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}
