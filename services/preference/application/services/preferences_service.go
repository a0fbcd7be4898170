package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	prefdomain "github.com/stockflow/backend/services/preference/domain"
	"github.com/stockflow/backend/services/preference/domain/models"
	"github.com/stockflow/backend/services/preference/domain/repositories"
)

// PreferencesService orchestrates per-user preferences with upsert-on-read.
type PreferencesService struct {
	repo repositories.PreferencesRepository
}

// NewPreferencesService returns a PreferencesService wired with the given repository.
func NewPreferencesService(repo repositories.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// Get returns the user's preferences, creating the default row on first read.
func (s *PreferencesService) Get(ctx context.Context, userID uuid.UUID) (*models.Preferences, error) {
	prefs, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// Update applies a partial patch to the user's preferences.
func (s *PreferencesService) Update(ctx context.Context, userID uuid.UUID, patch models.PreferencesPatch) (*models.Preferences, error) {
	if patch.IsZero() {
		return nil, prefdomain.ErrEmptyPatch
	}
	prefs, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return prefs, nil
}
