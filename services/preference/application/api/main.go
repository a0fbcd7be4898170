package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/preference/application/handlers"
	appsvcs "github.com/stockflow/backend/services/preference/application/services"
)

// PreferenceRoutes registers preference endpoints on the provided chi router.
func PreferenceRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", handlers.NewGetPreferencesHandler(svcs).Execute)
			r.Put("/", handlers.NewPutPreferencesHandler(svcs).Execute)
		})
	})
}
