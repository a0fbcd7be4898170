package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/collection"
	orderdomain "github.com/stockflow/backend/services/order/domain"
	"github.com/stockflow/backend/services/order/domain/models"
)

type fakeOrderRepo struct {
	orders []*models.Order
}

func (f *fakeOrderRepo) Save(_ context.Context, order *models.Order) error {
	// Newest first, as the real list query orders them.
	f.orders = append([]*models.Order{order}, f.orders...)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Order, error) {
	for _, o := range f.orders {
		if o.UserID == userID && o.ID == id {
			return o, nil
		}
	}
	return nil, orderdomain.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, userID, id uuid.UUID, patch models.OrderPatch) (*models.Order, error) {
	o, err := f.GetByID(context.Background(), userID, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, o := range f.orders {
		if o.UserID == userID && o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return orderdomain.ErrOrderNotFound
}

func seedOrder(t *testing.T, userID uuid.UUID, customer string, total float64) *models.Order {
	t.Helper()
	order, err := models.NewOrder(userID, customer, models.StatusPending, nil, total, 1)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	return order
}

func TestOrderStore_BindLoadsTenantCollection(t *testing.T) {
	userID := uuid.New()
	repo := &fakeOrderRepo{}
	repo.orders = append(repo.orders,
		seedOrder(t, userID, "Acme Corp", 50),
		seedOrder(t, uuid.New(), "Other Tenant", 10),
	)
	store := NewOrderStore(NewOrderService(repo))

	if err := store.SetTenant(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, orders, _ := store.Snapshot()
	if state != collection.Ready {
		t.Fatalf("expected Ready, got %d", state)
	}
	if len(orders) != 1 || orders[0].CustomerName != "Acme Corp" {
		t.Fatalf("expected only the tenant's order, got %d", len(orders))
	}
}

func TestOrderStore_CreateConfirmedThenPrepended(t *testing.T) {
	userID := uuid.New()
	repo := &fakeOrderRepo{}
	repo.orders = append(repo.orders, seedOrder(t, userID, "Acme Corp", 50))
	store := NewOrderStore(NewOrderService(repo))
	if err := store.SetTenant(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := store.Create(context.Background(), userID, CreateOrderInput{
		CustomerName: "Globex",
		Status:       "Pending",
		Items:        []ItemInput{{ProductID: uuid.New(), Quantity: 2, Price: 7}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, orders, _ := store.Snapshot()
	if len(orders) != 2 || orders[0].ID != created.ID {
		t.Fatalf("expected confirmed order prepended, got %d orders", len(orders))
	}

	// A rejected write must leave the collection untouched.
	_, err = store.Create(context.Background(), userID, CreateOrderInput{
		CustomerName: "Globex",
		Status:       "NotAStatus",
	})
	if !errors.Is(err, orderdomain.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
	_, orders, _ = store.Snapshot()
	if len(orders) != 2 {
		t.Fatalf("failed create changed the collection: %d orders", len(orders))
	}
}

func TestOrderStore_DeleteFiltersConfirmedRemoval(t *testing.T) {
	userID := uuid.New()
	repo := &fakeOrderRepo{}
	kept := seedOrder(t, userID, "Kept", 10)
	removed := seedOrder(t, userID, "Removed", 20)
	repo.orders = append(repo.orders, kept, removed)
	store := NewOrderStore(NewOrderService(repo))
	if err := store.SetTenant(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(context.Background(), userID, removed.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, orders, _ := store.Snapshot()
	if len(orders) != 1 || orders[0].ID != kept.ID {
		t.Fatalf("expected only the kept order, got %d", len(orders))
	}
}
