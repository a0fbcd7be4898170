package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	orderdomain "github.com/stockflow/backend/services/order/domain"
	"github.com/stockflow/backend/services/order/domain/models"
	"github.com/stockflow/backend/services/order/domain/repositories"
)

// ItemInput is one caller-supplied order line.
type ItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     float64
}

// CreateOrderInput carries the caller-supplied fields for a new order.
// When Items is non-empty, Total and ItemsCount are derived from it.
type CreateOrderInput struct {
	CustomerName string
	Status       string
	Items        []ItemInput
	Total        float64
	ItemsCount   int
}

// OrderService orchestrates order CRUD for one tenant at a time.
type OrderService struct {
	repo repositories.OrderRepository
}

// NewOrderService returns an OrderService wired with the given repository.
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create validates and persists an order with its line items.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, in CreateOrderInput) (*models.Order, error) {
	status, err := models.ParseOrderStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}

	items, err := buildItems(in.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}

	order, err := models.NewOrder(userID, in.CustomerName, status, items, in.Total, in.ItemsCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}

// GetByID retrieves an order with its line items.
func (s *OrderService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns the tenant's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Update applies a partial patch to an order.
func (s *OrderService) Update(ctx context.Context, userID, id uuid.UUID, patch models.OrderPatch) (*models.Order, error) {
	if patch.IsZero() {
		return nil, orderdomain.ErrEmptyPatch
	}
	order, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// Delete removes an order and its line items atomically.
func (s *OrderService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func buildItems(inputs []ItemInput) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		item, err := models.NewOrderItem(in.ProductID, in.Quantity, in.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}
