package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	customerdomain "github.com/stockflow/backend/services/customer/domain"
	"github.com/stockflow/backend/services/customer/domain/models"
	"github.com/stockflow/backend/services/customer/domain/repositories"
)

// CreateCustomerInput carries the caller-supplied fields for a new customer.
type CreateCustomerInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// CustomerService orchestrates customer CRUD for one tenant at a time.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService returns a CustomerService wired with the given repository.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create validates and persists a customer.
func (s *CustomerService) Create(ctx context.Context, userID uuid.UUID, in CreateCustomerInput) (*models.Customer, error) {
	customer, err := models.NewCustomer(userID, in.Name, in.Email, in.Phone, in.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", customerdomain.ErrInvalidCustomer, err)
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return customer, nil
}

// GetByID retrieves one customer.
func (s *CustomerService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// List returns the tenant's customers, newest first.
func (s *CustomerService) List(ctx context.Context, userID uuid.UUID) ([]*models.Customer, error) {
	customers, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Update applies a partial patch to a customer.
func (s *CustomerService) Update(ctx context.Context, userID, id uuid.UUID, patch models.CustomerPatch) (*models.Customer, error) {
	if patch.IsZero() {
		return nil, customerdomain.ErrEmptyPatch
	}
	customer, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
