package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context.
const (
	TopicProductCreated  = "product.created"
	TopicProductLowStock = "product.low_stock"
)

// ProductCreatedEvent is published after a new Product is persisted.
type ProductCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID  uuid.UUID `json:"product_id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	Category   string    `json:"category"`
	Quantity   int       `json:"quantity"`
	MinLevel   int       `json:"min_level"`
	Price      float64   `json:"price"`
	Cost       float64   `json:"cost"`
	Status     string    `json:"status"`
	Supplier   string    `json:"supplier"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProductLowStockEvent is published when an update drives a product's status
// to Low Stock or Out of Stock.
type ProductLowStockEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ProductID  uuid.UUID `json:"product_id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	Quantity   int       `json:"quantity"`
	MinLevel   int       `json:"min_level"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
