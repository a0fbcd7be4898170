package services

import (
	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/customer/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the customer context.
type Services struct {
	Customer *CustomerService
}

// New wires the customer services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewCustomerRepository(a.Db)
	return &Services{
		Customer: NewCustomerService(repo),
	}
}
