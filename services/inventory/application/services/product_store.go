package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/collection"
	"github.com/stockflow/backend/services/inventory/domain/models"
	domainsvcs "github.com/stockflow/backend/services/inventory/domain/services"
)

// ProductStore is a tenant-bound in-memory view over the product collection.
// Binding a tenant loads the full collection through the service; mutations
// go through the service and update the local collection only after the write
// is confirmed. Read paths that derive over the whole collection (dashboard,
// reports, exports) work from its snapshot.
type ProductStore struct {
	*collection.Store[*models.Product]
	svc *ProductService
}

// NewProductStore returns an unbound ProductStore over the given service.
func NewProductStore(svc *ProductService) *ProductStore {
	store := collection.NewStore(
		func(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error) {
			return svc.List(ctx, tenantID, domainsvcs.Filter{})
		},
		func(p *models.Product) uuid.UUID { return p.ID },
	)
	return &ProductStore{Store: store, svc: svc}
}

// Create persists through the service and prepends the confirmed product.
func (s *ProductStore) Create(ctx context.Context, userID uuid.UUID, in CreateProductInput) (*models.Product, error) {
	return s.Store.Create(ctx, func(ctx context.Context) (*models.Product, error) {
		return s.svc.Create(ctx, userID, in)
	})
}

// Update persists through the service and replaces the confirmed product in place.
func (s *ProductStore) Update(ctx context.Context, userID, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	return s.Store.Update(ctx, func(ctx context.Context) (*models.Product, error) {
		return s.svc.Update(ctx, userID, id, patch)
	})
}

// Delete removes through the service and filters the product out of the collection.
func (s *ProductStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.Store.Delete(ctx, id, func(ctx context.Context) error {
		return s.svc.Delete(ctx, userID, id)
	})
}
