package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus validates a status string.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// OrderItem is one line of an order. Subtotal is always quantity × price.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64
	Subtotal  float64
}

// NewOrderItem constructs a valid line item with computed subtotal.
func NewOrderItem(productID uuid.UUID, quantity int, price float64) (OrderItem, error) {
	if productID == uuid.Nil {
		return OrderItem{}, fmt.Errorf("product id must be set")
	}
	if quantity < 1 {
		return OrderItem{}, fmt.Errorf("item quantity must be at least 1")
	}
	if price < 0 {
		return OrderItem{}, fmt.Errorf("item price must not be negative")
	}
	return OrderItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Subtotal:  float64(quantity) * price,
	}, nil
}

// Order is the order aggregate. Line items are the source of truth: Total and
// ItemsCount are derived from Items on every write that includes them.
// Orders imported without item detail keep their stored aggregates.
// UserID is the tenant scope; Date is the immutable creation timestamp.
type Order struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Number       string
	CustomerName string
	Date         time.Time
	Total        float64
	Status       OrderStatus
	ItemsCount   int
	Items        []OrderItem
}

// NewOrder constructs a valid Order with generated ID and current timestamp.
// When items are provided, total and itemsCount are computed from them and
// the caller-supplied aggregates are ignored.
func NewOrder(userID uuid.UUID, customerName string, status OrderStatus, items []OrderItem, total float64, itemsCount int) (*Order, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user_id must be set")
	}
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if total < 0 {
		return nil, fmt.Errorf("total must not be negative")
	}
	if itemsCount < 0 {
		return nil, fmt.Errorf("items count must not be negative")
	}

	now := time.Now().UTC()
	order := &Order{
		ID:           uuid.New(),
		UserID:       userID,
		Number:       fmt.Sprintf("ORD-%d", now.UnixMilli()),
		CustomerName: customerName,
		Date:         now,
		Total:        total,
		Status:       status,
		ItemsCount:   itemsCount,
		Items:        items,
	}
	if len(items) > 0 {
		order.recomputeAggregates()
	}
	return order, nil
}

// SetItems replaces the line items and recomputes the aggregates.
func (o *Order) SetItems(items []OrderItem) {
	o.Items = items
	o.recomputeAggregates()
}

func (o *Order) recomputeAggregates() {
	var total float64
	var count int
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		total += o.Items[i].Subtotal
		count += o.Items[i].Quantity
	}
	o.Total = total
	o.ItemsCount = count
}

// OrderPatch carries partial-field update semantics. Date is immutable and
// not patchable. When Items is non-nil, the line items are replaced and
// Total/ItemsCount are recomputed, overriding any patched aggregates. On an
// order with tracked items, patched aggregates are always ignored — the items
// stay the source of truth; Total/ItemsCount patches only apply to orders
// stored without item detail.
type OrderPatch struct {
	CustomerName *string
	Status       *OrderStatus
	Total        *float64
	ItemsCount   *int
	Items        []OrderItem
}

// IsZero reports whether the patch carries no changes.
func (p OrderPatch) IsZero() bool {
	return p.CustomerName == nil && p.Status == nil && p.Total == nil && p.ItemsCount == nil && p.Items == nil
}

// Apply mutates order with the patch fields.
func (p OrderPatch) Apply(order *Order) error {
	if p.CustomerName != nil {
		if *p.CustomerName == "" {
			return fmt.Errorf("customer name is required")
		}
		order.CustomerName = *p.CustomerName
	}
	if p.Status != nil {
		order.Status = *p.Status
	}
	if p.Items != nil {
		order.SetItems(p.Items)
		return nil
	}
	if len(order.Items) > 0 {
		// Tracked items stay the source of truth; aggregate patches are ignored.
		order.recomputeAggregates()
		return nil
	}
	if p.Total != nil {
		if *p.Total < 0 {
			return fmt.Errorf("total must not be negative")
		}
		order.Total = *p.Total
	}
	if p.ItemsCount != nil {
		if *p.ItemsCount < 0 {
			return fmt.Errorf("items count must not be negative")
		}
		order.ItemsCount = *p.ItemsCount
	}
	return nil
}
