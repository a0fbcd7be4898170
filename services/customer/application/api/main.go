package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/customer/application/handlers"
	appsvcs "github.com/stockflow/backend/services/customer/application/services"
)

// CustomerRoutes registers customer endpoints on the provided chi router.
func CustomerRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", handlers.NewListCustomersHandler(svcs).Execute)
			r.Post("/", handlers.NewPostCustomerHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetCustomerHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutCustomerHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteCustomerHandler(svcs).Execute)
		})
	})
}
