package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/services/account/application/handlers"
	appsvcs "github.com/stockflow/backend/services/account/application/services"
)

// AccountRoutes registers auth endpoints on the provided chi router.
// Register, login and logout are public; profile endpoints require a session.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svcs, a.SessionStore).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore).Execute)
		r.Post("/logout", handlers.NewLogoutHandler(a.SessionStore).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Get("/me", handlers.NewMeHandler(svcs).Execute)
			r.Put("/me", handlers.NewUpdateProfileHandler(svcs).Execute)
		})
	})
}
