package services

import (
	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/preference/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the preference context.
type Services struct {
	Preferences *PreferencesService
}

// New wires the preference services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewPreferencesRepository(a.Db, a.EventBus)
	return &Services{
		Preferences: NewPreferencesService(repo),
	}
}
