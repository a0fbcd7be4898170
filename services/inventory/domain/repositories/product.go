package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/inventory/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Every method is tenant-scoped by userID — products are never readable or
// writable across tenants.
type ProductRepository interface {
	// Save persists a new Product. Returns ErrSKUAlreadyExists when the SKU
	// is taken within the tenant.
	Save(ctx context.Context, product *models.Product) error

	// SaveBatch persists products atomically: either all rows are inserted
	// or none are.
	SaveBatch(ctx context.Context, products []*models.Product) error

	// GetByID retrieves a product by ID within tenant scope.
	// Returns ErrProductNotFound when no row matches.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Product, error)

	// FindByUserID retrieves all products for the tenant ordered by creation
	// time descending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Product, error)

	// Update applies a partial patch to an existing product and returns the
	// updated aggregate. Returns ErrProductNotFound when no row matches.
	Update(ctx context.Context, userID, id uuid.UUID, patch models.ProductPatch) (*models.Product, error)

	// Delete removes a product by ID within tenant scope.
	// Returns ErrProductNotFound when no row matches.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
