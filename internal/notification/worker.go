package notification

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Worker turns queued receipt events into emails. Delivery uses a bounded
// retry with exponential backoff; an exhausted event is handed back to the
// queue for redelivery.
type Worker struct {
	mailer     Mailer
	maxRetries int
	backoff    time.Duration
}

// NewWorker creates a worker delivering through the given mailer.
func NewWorker(mailer Mailer) *Worker {
	return &Worker{
		mailer:     mailer,
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

// HandleDelivery processes one queued receipt event. A non-nil return makes
// the consumer nack the message for redelivery.
func (w *Worker) HandleDelivery(msg amqp.Delivery) error {
	var event ReceiptEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		// A malformed event can never succeed; ack it out of the queue.
		log.Printf("Dropping malformed receipt event (tag %d): %v", msg.DeliveryTag, err)
		return nil
	}
	return w.Deliver(event)
}

// Deliver formats and emails one receipt, retrying transient failures.
func (w *Worker) Deliver(event ReceiptEvent) error {
	body := FormatReceipt(event)
	delay := w.backoff

	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		err = w.mailer.Send(event.Email, event.Subject(), body)
		if err == nil {
			log.Printf("Receipt for order %d delivered to %s", event.OrderID, event.Email)
			return nil
		}
		log.Printf("Receipt delivery attempt %d/%d for order %d failed: %v", attempt, w.maxRetries, event.OrderID, err)
		if attempt < w.maxRetries {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return fmt.Errorf("failed to deliver receipt for order %d: %w", event.OrderID, err)
}
