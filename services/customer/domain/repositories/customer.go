package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/customer/domain/models"
)

// CustomerRepository is the persistence interface for the Customer aggregate.
// All methods are tenant-scoped by userID.
type CustomerRepository interface {
	// Save persists a new Customer.
	Save(ctx context.Context, customer *models.Customer) error

	// GetByID retrieves a customer. Returns ErrCustomerNotFound when no row matches.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Customer, error)

	// FindByUserID retrieves all customers for the tenant, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Customer, error)

	// Update applies a partial patch. Returns ErrCustomerNotFound when no row matches.
	Update(ctx context.Context, userID, id uuid.UUID, patch models.CustomerPatch) (*models.Customer, error)

	// Delete removes the customer. Returns ErrCustomerNotFound when no row matches.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
