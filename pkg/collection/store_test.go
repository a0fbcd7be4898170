package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type entity struct {
	ID   uuid.UUID
	Name string
}

func entityID(e entity) uuid.UUID { return e.ID }

func fixedLoader(items []entity, err error) Loader[entity] {
	return func(context.Context, uuid.UUID) ([]entity, error) {
		return items, err
	}
}

func TestStore_Lifecycle(t *testing.T) {
	seed := []entity{{ID: uuid.New(), Name: "a"}, {ID: uuid.New(), Name: "b"}}
	store := NewStore(fixedLoader(seed, nil), entityID)

	state, items, err := store.Snapshot()
	if state != Idle || len(items) != 0 || err != nil {
		t.Fatalf("new store should be Idle and empty, got state %d items %d err %v", state, len(items), err)
	}

	tenant := uuid.New()
	if err := store.SetTenant(context.Background(), tenant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, items, err = store.Snapshot()
	if state != Ready || len(items) != 2 || err != nil {
		t.Fatalf("expected Ready with 2 items, got state %d items %d err %v", state, len(items), err)
	}
	if store.Tenant() != tenant {
		t.Fatal("expected tenant bound")
	}

	// Unbinding clears everything back to Idle.
	if err := store.SetTenant(context.Background(), uuid.Nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, items, _ = store.Snapshot()
	if state != Idle || len(items) != 0 {
		t.Fatalf("expected Idle after unbind, got state %d items %d", state, len(items))
	}
}

func TestStore_LoadFailure(t *testing.T) {
	loadErr := errors.New("boom")
	store := NewStore(fixedLoader(nil, loadErr), entityID)

	if err := store.SetTenant(context.Background(), uuid.New()); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	state, items, err := store.Snapshot()
	if state != Failed || len(items) != 0 || !errors.Is(err, loadErr) {
		t.Fatalf("expected Failed empty store, got state %d items %d err %v", state, len(items), err)
	}
}

func TestStore_CreatePrependsOnlyOnSuccess(t *testing.T) {
	seed := []entity{{ID: uuid.New(), Name: "existing"}}
	store := NewStore(fixedLoader(seed, nil), entityID)
	if err := store.SetTenant(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh := entity{ID: uuid.New(), Name: "fresh"}
	got, err := store.Create(context.Background(), func(context.Context) (entity, error) {
		return fresh, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != fresh.ID {
		t.Fatal("expected confirmed entity returned")
	}
	_, items, _ := store.Snapshot()
	if len(items) != 2 || items[0].ID != fresh.ID {
		t.Fatalf("expected prepend, got %v", items)
	}

	callErr := errors.New("rejected")
	_, err = store.Create(context.Background(), func(context.Context) (entity, error) {
		return entity{}, callErr
	})
	if !errors.Is(err, callErr) {
		t.Fatalf("expected call error surfaced, got %v", err)
	}
	_, items, _ = store.Snapshot()
	if len(items) != 2 {
		t.Fatal("failed create must leave the collection untouched")
	}
}

func TestStore_UpdateReplacesInPlace(t *testing.T) {
	a := entity{ID: uuid.New(), Name: "a"}
	b := entity{ID: uuid.New(), Name: "b"}
	store := NewStore(fixedLoader([]entity{a, b}, nil), entityID)
	if err := store.SetTenant(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	renamed := entity{ID: b.ID, Name: "b2"}
	if _, err := store.Update(context.Background(), func(context.Context) (entity, error) {
		return renamed, nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, items, _ := store.Snapshot()
	if len(items) != 2 || items[0].ID != a.ID || items[1].Name != "b2" {
		t.Fatalf("expected in-place replacement, got %v", items)
	}
}

func TestStore_DeleteFiltersOut(t *testing.T) {
	a := entity{ID: uuid.New(), Name: "a"}
	b := entity{ID: uuid.New(), Name: "b"}
	store := NewStore(fixedLoader([]entity{a, b}, nil), entityID)
	if err := store.SetTenant(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(context.Background(), a.ID, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, items, _ := store.Snapshot()
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("expected only b left, got %v", items)
	}

	delErr := errors.New("nope")
	if err := store.Delete(context.Background(), b.ID, func(context.Context) error { return delErr }); !errors.Is(err, delErr) {
		t.Fatalf("expected delete error surfaced, got %v", err)
	}
	_, items, _ = store.Snapshot()
	if len(items) != 1 {
		t.Fatal("failed delete must leave the collection untouched")
	}
}

func TestStore_StaleLoadDiscarded(t *testing.T) {
	tenantA := uuid.New()
	tenantB := uuid.New()
	itemsA := []entity{{ID: uuid.New(), Name: "a"}}
	itemsB := []entity{{ID: uuid.New(), Name: "b1"}, {ID: uuid.New(), Name: "b2"}}

	var store *Store[entity]
	rebindOnce := true
	store = NewStore(func(ctx context.Context, tenantID uuid.UUID) ([]entity, error) {
		if tenantID == tenantA {
			// A newer bind lands while tenant A's load is still in flight.
			if rebindOnce {
				rebindOnce = false
				if err := store.SetTenant(ctx, tenantB); err != nil {
					return nil, err
				}
			}
			return itemsA, nil
		}
		return itemsB, nil
	}, entityID)

	if err := store.SetTenant(context.Background(), tenantA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, items, _ := store.Snapshot()
	if state != Ready || len(items) != 2 {
		t.Fatalf("expected tenant B's collection, got state %d items %d", state, len(items))
	}
	if store.Tenant() != tenantB {
		t.Fatal("expected tenant B bound")
	}
}
