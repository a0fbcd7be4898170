package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/collection"
	invdomain "github.com/stockflow/backend/services/inventory/domain"
)

func TestProductStore_BindLoadsTenantCollection(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProductRepo{}
	repo.products = append(repo.products,
		bulkProduct(t, userID, "Wireless Keyboard", "SKU-1001", 42, 79.99),
		bulkProduct(t, uuid.New(), "Other Tenant Product", "SKU-1002", 5, 9.99),
	)
	store := NewProductStore(NewProductService(repo, nil))

	if err := store.SetTenant(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, products, _ := store.Snapshot()
	if state != collection.Ready {
		t.Fatalf("expected Ready, got %d", state)
	}
	if len(products) != 1 || products[0].Name != "Wireless Keyboard" {
		t.Fatalf("expected only the tenant's product, got %d", len(products))
	}
}

func TestProductStore_CreateConfirmedThenPrepended(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProductRepo{}
	repo.products = append(repo.products, bulkProduct(t, userID, "Existing", "SKU-1001", 5, 10))
	store := NewProductStore(NewProductService(repo, nil))
	if err := store.SetTenant(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := store.Create(context.Background(), userID, CreateProductInput{
		Name: "Desk Lamp", SKU: "SKU-2001", Category: "Furniture",
		Quantity: 30, MinLevel: 10, Price: 35.50, Supplier: "Acme",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, products, _ := store.Snapshot()
	if len(products) != 2 || products[0].ID != created.ID {
		t.Fatalf("expected confirmed product prepended, got %d products", len(products))
	}

	// A rejected write must leave the collection untouched.
	_, err = store.Create(context.Background(), userID, CreateProductInput{
		Name: "Bad", SKU: "!", Quantity: 1, Price: 1,
	})
	if !errors.Is(err, invdomain.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
	_, products, _ = store.Snapshot()
	if len(products) != 2 {
		t.Fatalf("failed create changed the collection: %d products", len(products))
	}
}

func TestProductStore_DeleteFiltersConfirmedRemoval(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProductRepo{}
	kept := bulkProduct(t, userID, "Kept", "SKU-1001", 5, 10)
	removed := bulkProduct(t, userID, "Removed", "SKU-1002", 5, 10)
	repo.products = append(repo.products, kept, removed)
	store := NewProductStore(NewProductService(repo, nil))
	if err := store.SetTenant(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(context.Background(), userID, removed.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, products, _ := store.Snapshot()
	if len(products) != 1 || products[0].ID != kept.ID {
		t.Fatalf("expected only the kept product, got %d", len(products))
	}

	// Deleting a missing product fails and leaves the collection untouched.
	if err := store.Delete(context.Background(), userID, uuid.New()); !errors.Is(err, invdomain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	_, products, _ = store.Snapshot()
	if len(products) != 1 {
		t.Fatalf("failed delete changed the collection: %d products", len(products))
	}
}
