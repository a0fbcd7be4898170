package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/preference/domain/models"
)

// PreferencesRepository is the persistence interface for per-user preferences.
// A missing row is materialized with defaults on read, so there is no
// not-found error on this interface.
type PreferencesRepository interface {
	// GetOrCreate returns the user's preferences, inserting the default row
	// when none exists yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Preferences, error)

	// Update applies a partial patch. The row is materialized with defaults
	// first when it does not exist.
	Update(ctx context.Context, userID uuid.UUID, patch models.PreferencesPatch) (*models.Preferences, error)
}
