package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/report/application/handlers"
	appsvcs "github.com/stockflow/backend/services/report/application/services"
)

// ReportRoutes registers dashboard and report endpoints on the provided chi router.
func ReportRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Get("/dashboard", handlers.NewGetDashboardHandler(svcs).Execute)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/export", handlers.NewExportReportHandler(svcs).Execute)
			r.Post("/efficiency", handlers.NewEfficiencyReportHandler(svcs).Execute)
		})
	})
}
