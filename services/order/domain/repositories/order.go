package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// All methods are tenant-scoped by userID.
type OrderRepository interface {
	// Save persists a new Order with its line items in one transaction.
	Save(ctx context.Context, order *models.Order) error

	// GetByID retrieves an order with its line items.
	// Returns ErrOrderNotFound when no row matches.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Order, error)

	// FindByUserID retrieves all orders for the tenant ordered by creation
	// time descending. Line items are not loaded on the list path.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)

	// Update applies a partial patch; when the patch replaces items, the old
	// items are swapped for the new set in the same transaction.
	// Returns ErrOrderNotFound when no row matches.
	Update(ctx context.Context, userID, id uuid.UUID, patch models.OrderPatch) (*models.Order, error)

	// Delete removes the order and its line items in one transaction.
	// Returns ErrOrderNotFound when no row matches.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
