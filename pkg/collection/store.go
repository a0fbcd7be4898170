// Package collection provides a tenant-scoped in-memory view over an entity
// collection. A Store tracks one tenant's items plus loading/error state and
// applies confirmed mutations locally, so read-heavy consumers (dashboards,
// exports, UIs) can work from a warm snapshot instead of refetching.
package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// State is the observable lifecycle of a Store.
type State int

const (
	// Idle means no tenant is bound and the store holds nothing.
	Idle State = iota
	// Loading means a full reload for the bound tenant is in flight.
	Loading
	// Ready means items reflect the last successful load plus confirmed mutations.
	Ready
	// Failed means the last load errored; items are empty.
	Failed
)

// Loader fetches the full collection for one tenant.
type Loader[T any] func(ctx context.Context, tenantID uuid.UUID) ([]T, error)

// Store holds one tenant's collection with hook-style state transitions:
// binding a tenant (re)enters Loading and issues a full load; mutations are
// applied to the local collection only after the backing call confirms.
// Mutations never speculate: a failed call leaves the collection untouched
// and returns the error to the caller.
type Store[T any] struct {
	load Loader[T]
	id   func(T) uuid.UUID

	mu         sync.Mutex
	state      State
	tenant     uuid.UUID
	generation uint64
	items      []T
	err        error
}

// NewStore returns an Idle store. id extracts the identity used by
// Update and Delete to locate items.
func NewStore[T any](load Loader[T], id func(T) uuid.UUID) *Store[T] {
	return &Store[T]{load: load, id: id, state: Idle}
}

// SetTenant binds the store to a tenant and synchronously reloads the
// collection. Binding uuid.Nil clears the store back to Idle. A stale load
// that lost to a concurrent SetTenant is discarded, so the store never shows
// one tenant's items under another tenant's identity.
func (s *Store[T]) SetTenant(ctx context.Context, tenantID uuid.UUID) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.tenant = tenantID
	s.items = nil
	s.err = nil
	if tenantID == uuid.Nil {
		s.state = Idle
		s.mu.Unlock()
		return nil
	}
	s.state = Loading
	s.mu.Unlock()

	items, err := s.load(ctx, tenantID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil // superseded by a newer SetTenant
	}
	if err != nil {
		s.state = Failed
		s.err = err
		return err
	}
	s.state = Ready
	s.items = items
	return nil
}

// Snapshot returns the current state, a copy of the collection and the last
// load error.
func (s *Store[T]) Snapshot() (State, []T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return s.state, items, s.err
}

// Tenant returns the currently bound tenant ID.
func (s *Store[T]) Tenant() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenant
}

// Create runs the backing call and, only on success, prepends the confirmed
// entity to the collection. On failure the collection is unchanged and the
// error is returned for the caller to surface.
func (s *Store[T]) Create(ctx context.Context, do func(ctx context.Context) (T, error)) (T, error) {
	created, err := do(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Ready {
		s.items = append([]T{created}, s.items...)
	}
	return created, nil
}

// Update runs the backing call and, only on success, replaces the matching
// item in place. An item not present locally (e.g. created elsewhere) leaves
// the collection unchanged; the confirmed entity is still returned.
func (s *Store[T]) Update(ctx context.Context, do func(ctx context.Context) (T, error)) (T, error) {
	updated, err := do(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Ready {
		id := s.id(updated)
		for i := range s.items {
			if s.id(s.items[i]) == id {
				s.items[i] = updated
				break
			}
		}
	}
	return updated, nil
}

// Delete runs the backing call and, only on success, filters the item out of
// the collection.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID, do func(ctx context.Context) error) error {
	if err := do(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Ready {
		kept := s.items[:0]
		for _, item := range s.items {
			if s.id(item) != id {
				kept = append(kept, item)
			}
		}
		s.items = kept
	}
	return nil
}
