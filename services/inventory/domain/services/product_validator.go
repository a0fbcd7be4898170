// Package services contains stateless domain services for the inventory
// bounded context. They operate purely on domain types with no external
// dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/inventory/domain/models"
)

const (
	minNameLength = 2
	maxNameLength = 100
	maxPrice      = 1_000_000
	maxQuantity   = 100_000
)

// ValidateName enforces product name rules: 2–100 characters after trimming.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNameLength {
		return fmt.Errorf("product name must be at least %d characters", minNameLength)
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("product name must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateProductForCreation performs cross-field validation on a
// fully-constructed Product before it is persisted. Structural constraints
// (SKU shape, non-negative numerics, derived status) are assumed to hold via
// the constructors; this adds business-level bounds.
func ValidateProductForCreation(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product cannot be nil")
	}

	if err := ValidateName(p.Name); err != nil {
		return err
	}

	if p.Price > maxPrice {
		return fmt.Errorf("price must be between 0 and %d", maxPrice)
	}

	if p.Quantity > maxQuantity {
		return fmt.Errorf("quantity must be a non-negative integer up to %d", maxQuantity)
	}

	if p.Status != models.DeriveStatus(p.Quantity, p.MinLevel) {
		return fmt.Errorf("status %q does not match quantity %d and min level %d", p.Status, p.Quantity, p.MinLevel)
	}

	if p.UserID == uuid.Nil {
		return fmt.Errorf("user_id must be set")
	}

	if p.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
