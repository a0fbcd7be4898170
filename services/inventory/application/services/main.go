package services

import (
	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/pkg/cache"
	"github.com/stockflow/backend/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the inventory context.
type Services struct {
	Product *ProductService
	Bulk    *BulkService
}

// New wires the inventory services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Product: NewProductService(repo, productCache),
		Bulk:    NewBulkService(repo),
	}
}
