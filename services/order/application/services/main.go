package services

import (
	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the order context.
type Services struct {
	Order *OrderService
}

// New wires the order services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOrderRepository(a.Db, a.EventBus)
	return &Services{
		Order: NewOrderService(repo),
	}
}
