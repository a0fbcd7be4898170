package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a tenant-scoped customer record. Email, Phone and Address are
// optional; nil means the field was never provided.
type Customer struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}

// NewCustomer constructs a valid Customer with generated ID and current timestamp.
func NewCustomer(userID uuid.UUID, name string, email, phone, address *string) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user_id must be set")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	return &Customer{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// CustomerPatch carries partial-field update semantics. A non-nil optional
// field replaces the stored value; an empty string clears it to null.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// IsZero reports whether the patch carries no changes.
func (p CustomerPatch) IsZero() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil
}

// Apply mutates customer with the patch fields.
func (p CustomerPatch) Apply(customer *Customer) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("customer name is required")
		}
		customer.Name = name
	}
	if p.Email != nil {
		customer.Email = normalizeOptional(*p.Email)
	}
	if p.Phone != nil {
		customer.Phone = normalizeOptional(*p.Phone)
	}
	if p.Address != nil {
		customer.Address = normalizeOptional(*p.Address)
	}
	return nil
}

func normalizeOptional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
