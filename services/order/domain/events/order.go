package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicOrderCreated is the Watermill topic published when an Order is created.
const TopicOrderCreated = "order.created"

// OrderCreatedEvent is published after a new Order is persisted.
type OrderCreatedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	OrderID      uuid.UUID `json:"order_id"`
	UserID       uuid.UUID `json:"user_id"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	ItemsCount   int       `json:"items_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}
