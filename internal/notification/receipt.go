package notification

import (
	"fmt"
	"strings"
	"time"
)

// ReceiptItem is one purchased line on the receipt.
type ReceiptItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // unit price in cents
}

// ReceiptEvent is the payload checkout queues for the notification worker.
type ReceiptEvent struct {
	OrderID    uint          `json:"orderId"`
	Email      string        `json:"email"`
	ClientName string        `json:"clientName"`
	Date       time.Time     `json:"date"`
	Items      []ReceiptItem `json:"items"`
	Total      int64         `json:"total"`
}

// Subject returns the receipt email subject line.
func (e ReceiptEvent) Subject() string {
	return fmt.Sprintf("Confirmação do pedido #%d", e.OrderID)
}

// FormatReceipt renders the plain-text receipt body: greeting, itemized
// lines, and the order total.
func FormatReceipt(e ReceiptEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s!\n\n", e.ClientName)
	fmt.Fprintf(&b, "Recebemos o seu pedido #%d em %s.\n\n", e.OrderID, e.Date.Format("02/01/2006 15:04"))
	for _, item := range e.Items {
		fmt.Fprintf(&b, "- %s x%d: %s cada\n", item.Name, item.Quantity, FormatPrice(item.Price))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", FormatPrice(e.Total))
	b.WriteString("\nObrigado pela sua compra!\n")
	return b.String()
}

// FormatPrice renders a cent amount as Brazilian currency.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
