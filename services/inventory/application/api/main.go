package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/inventory/application/handlers"
	appsvcs "github.com/stockflow/backend/services/inventory/application/services"
)

// InventoryRoutes registers product endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/export", handlers.NewExportProductsHandler(svcs).Execute)
			r.Post("/import", handlers.NewImportProductsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
	})
}
