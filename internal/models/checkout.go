package models

import "time"

// CheckoutOrder is one order record per successful checkout submission.
// ClientName is denormalized from the authenticated user at write time.
// Column spellings (CPF, CelNumber, Adress) follow the persisted schema.
type CheckoutOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ClientName string    `json:"clientName"`
	UserID     uint      `json:"userId" gorm:"index;not null"`
	CPF        string    `json:"cpf"`
	CelNumber  string    `json:"celNumber"`
	Date       time.Time `json:"date"`
	Adress     string    `json:"adress"`
	Payment    string    `json:"payment"`
	Total      int64     `json:"total"`
}

// CartLine is one (product, quantity) pair inside a checkout submission.
// It is transient: lines drive the inventory decrement and the receipt but
// are never persisted on their own.
type CartLine struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// PaymentMethods is the closed set of accepted payment labels.
var PaymentMethods = map[string]bool{
	"Cartão de crédito": true,
	"Cartão de débito":  true,
	"Boleto":            true,
	"Pix":               true,
}
