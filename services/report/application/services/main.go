package services

import (
	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/pkg/cache"
	"github.com/stockflow/backend/pkg/workflows"
	invappsvcs "github.com/stockflow/backend/services/inventory/application/services"
	invpostgres "github.com/stockflow/backend/services/inventory/infrastructure/persistence/postgres"
	orderappsvcs "github.com/stockflow/backend/services/order/application/services"
	orderpostgres "github.com/stockflow/backend/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the report context.
type Services struct {
	Report   *ReportService
	Cache    *cache.ReportCache
	Temporal *workflows.TemporalClient // nil when Temporal is disabled
}

// New wires the report services with infrastructure from the Application
// container. Reports are read-only over inventory and orders, so the
// repositories are constructed without the event bus and the product service
// without the point-read cache — reports always load full collections.
func New(a *app.Application) *Services {
	products := invappsvcs.NewProductService(invpostgres.NewProductRepository(a.Db, nil), nil)
	orders := orderappsvcs.NewOrderService(orderpostgres.NewOrderRepository(a.Db, nil))
	return &Services{
		Report:   NewReportService(products, orders),
		Cache:    cache.NewReportCache(a.Redis),
		Temporal: a.TemporalClient,
	}
}
