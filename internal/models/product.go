package models

// Product is a catalog entry. Price is in cents. AvailableQuantity is only
// ever mutated by the checkout decrement.
type Product struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	Name              string `json:"name" validate:"required,min=3,max=100"`
	AvailableQuantity int    `json:"availableQuantity" validate:"gte=0"`
	Price             int64  `json:"price" validate:"required,gt=0"`
	Description       string `json:"description" validate:"omitempty,max=500"`
	Image             string `json:"image"`
	CategoryID        int    `json:"categoryId"`
}
