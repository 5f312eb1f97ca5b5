package repositories

import (
	"fmt"

	"lojinha/internal/models"

	"gorm.io/gorm"
)

// GORMCheckoutRepository is a GORM implementation of CheckoutRepository.
type GORMCheckoutRepository struct {
	db *gorm.DB
}

// NewGORMCheckoutRepository creates a new instance of GORMCheckoutRepository.
func NewGORMCheckoutRepository(db *gorm.DB) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{
		db: db,
	}
}

// Create inserts the order and applies every line's decrement inside one
// transaction. Each decrement is a conditional UPDATE that only fires when
// the remaining quantity stays non-negative; zero affected rows aborts the
// whole transaction, so concurrent checkouts cannot oversell and a failed
// line never leaves a dangling order row.
func (r *GORMCheckoutRepository) Create(order *models.CheckoutOrder, lines []models.CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, line := range lines {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND available_quantity >= ?", line.ProductID, line.Quantity).
				UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", line.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement product %d: %w", line.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				// Distinguish a missing product from an oversell.
				var count int64
				if err := tx.Model(&models.Product{}).Where("id = ?", line.ProductID).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to check product %d: %w", line.ProductID, err)
				}
				if count == 0 {
					return fmt.Errorf("product %d: %w", line.ProductID, ErrProductNotFound)
				}
				return fmt.Errorf("product %d: %w", line.ProductID, ErrInsufficientStock)
			}
		}
		return nil
	})
}
