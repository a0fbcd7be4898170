package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/account/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
type UserRepository interface {
	// Save persists a new User. Returns ErrEmailAlreadyExists when the email
	// is already registered.
	Save(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByEmail retrieves a user by lowercased email.
	// Returns ErrUserNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateName updates the display name. Returns ErrUserNotFound when no row matches.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}
