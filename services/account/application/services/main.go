package services

import (
	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/services/account/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the account context.
type Services struct {
	Account *AccountService
}

// New wires the account services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		Account: NewAccountService(repo),
	}
}
