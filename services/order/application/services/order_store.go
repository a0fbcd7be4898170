package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/collection"
	"github.com/stockflow/backend/services/order/domain/models"
)

// OrderStore is a tenant-bound in-memory view over the order collection,
// newest first as the service lists them. Mutations update the local
// collection only after the backing write is confirmed.
type OrderStore struct {
	*collection.Store[*models.Order]
	svc *OrderService
}

// NewOrderStore returns an unbound OrderStore over the given service.
func NewOrderStore(svc *OrderService) *OrderStore {
	store := collection.NewStore(
		func(ctx context.Context, tenantID uuid.UUID) ([]*models.Order, error) {
			return svc.List(ctx, tenantID)
		},
		func(o *models.Order) uuid.UUID { return o.ID },
	)
	return &OrderStore{Store: store, svc: svc}
}

// Create persists through the service and prepends the confirmed order.
func (s *OrderStore) Create(ctx context.Context, userID uuid.UUID, in CreateOrderInput) (*models.Order, error) {
	return s.Store.Create(ctx, func(ctx context.Context) (*models.Order, error) {
		return s.svc.Create(ctx, userID, in)
	})
}

// Update persists through the service and replaces the confirmed order in place.
func (s *OrderStore) Update(ctx context.Context, userID, id uuid.UUID, patch models.OrderPatch) (*models.Order, error) {
	return s.Store.Update(ctx, func(ctx context.Context) (*models.Order, error) {
		return s.svc.Update(ctx, userID, id, patch)
	})
}

// Delete removes through the service and filters the order out of the collection.
func (s *OrderStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.Store.Delete(ctx, id, func(ctx context.Context) error {
		return s.svc.Delete(ctx, userID, id)
	})
}
