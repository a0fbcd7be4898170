package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the derived stock status of a product. It is never stored
// independently of the derivation rule — every write path must go through
// DeriveStatus.
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// DeriveStatus computes the stock status from quantity and reorder threshold.
//
//	quantity == 0             → Out of Stock
//	0 < quantity <= minLevel  → Low Stock
//	quantity > minLevel       → In Stock
func DeriveStatus(quantity, minLevel int) Status {
	if quantity == 0 {
		return StatusOutOfStock
	}
	if quantity <= minLevel {
		return StatusLowStock
	}
	return StatusInStock
}

// DefaultCostRatio is applied when a product is created without an explicit cost.
const DefaultCostRatio = 0.6

// Product is the inventory aggregate. UserID is the tenant scope — every
// query must filter by it.
type Product struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	SKU       SKU
	Category  string
	Quantity  int
	MinLevel  int
	Price     float64
	Cost      float64
	Status    Status
	Supplier  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct constructs a valid Product with generated ID, derived status and
// current timestamps. Cost falls back to DefaultCostRatio × price when zero.
func NewProduct(userID uuid.UUID, name string, sku SKU, category string, quantity, minLevel int, price, cost float64, supplier string) (*Product, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	if minLevel < 0 {
		return nil, fmt.Errorf("min level must not be negative")
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if cost < 0 {
		return nil, fmt.Errorf("cost must not be negative")
	}
	if cost == 0 {
		cost = price * DefaultCostRatio
	}

	now := time.Now().UTC()
	return &Product{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		SKU:       sku,
		Category:  category,
		Quantity:  quantity,
		MinLevel:  minLevel,
		Price:     price,
		Cost:      cost,
		Status:    DeriveStatus(quantity, minLevel),
		Supplier:  supplier,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ProductPatch carries partial-field update semantics: only non-nil fields
// change the product. Status is never patched directly; it is rederived
// whenever quantity or min level change.
type ProductPatch struct {
	Name     *string
	SKU      *SKU
	Category *string
	Quantity *int
	MinLevel *int
	Price    *float64
	Cost     *float64
	Supplier *string
}

// IsZero reports whether the patch carries no changes.
func (p ProductPatch) IsZero() bool {
	return p == ProductPatch{}
}

// Apply mutates prod with the patch fields, rederives status and bumps
// UpdatedAt. Numeric fields are range-checked.
func (p ProductPatch) Apply(prod *Product) error {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.SKU != nil {
		prod.SKU = *p.SKU
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Quantity != nil {
		if *p.Quantity < 0 {
			return fmt.Errorf("quantity must not be negative")
		}
		prod.Quantity = *p.Quantity
	}
	if p.MinLevel != nil {
		if *p.MinLevel < 0 {
			return fmt.Errorf("min level must not be negative")
		}
		prod.MinLevel = *p.MinLevel
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return fmt.Errorf("price must not be negative")
		}
		prod.Price = *p.Price
	}
	if p.Cost != nil {
		if *p.Cost < 0 {
			return fmt.Errorf("cost must not be negative")
		}
		prod.Cost = *p.Cost
	}
	if p.Supplier != nil {
		prod.Supplier = *p.Supplier
	}

	prod.Status = DeriveStatus(prod.Quantity, prod.MinLevel)
	prod.UpdatedAt = time.Now().UTC()
	return nil
}
