package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/stockflow/backend/pkg/cache"
	invdomain "github.com/stockflow/backend/services/inventory/domain"
	"github.com/stockflow/backend/services/inventory/domain/models"
	"github.com/stockflow/backend/services/inventory/domain/repositories"
	domainsvcs "github.com/stockflow/backend/services/inventory/domain/services"
)

// CreateProductInput carries the caller-supplied fields for a new product.
// ID, status and timestamps are assigned server-side.
type CreateProductInput struct {
	Name     string
	SKU      string
	Category string
	Quantity int
	MinLevel int
	Price    float64
	Cost     float64
	Supplier string
}

// ProductService orchestrates product CRUD for one tenant at a time.
// Event publishing is handled by the repository layer (outbox pattern).
// Point reads are served from Redis cache when available.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *pkgcache.ProductCache
}

// NewProductService returns a ProductService wired with the given repository and cache.
func NewProductService(repo repositories.ProductRepository, cache *pkgcache.ProductCache) *ProductService {
	return &ProductService{repo: repo, cache: cache}
}

// Create validates and persists a product. The repository publishes ProductCreatedEvent.
func (s *ProductService) Create(ctx context.Context, userID uuid.UUID, in CreateProductInput) (*models.Product, error) {
	sku, err := models.NewSKU(in.SKU)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidProduct, err)
	}

	product, err := models.NewProduct(userID, in.Name, sku, in.Category, in.Quantity, in.MinLevel, in.Price, in.Cost, in.Supplier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidProduct, err)
	}

	if err := domainsvcs.ValidateProductForCreation(product); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a product using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		// Miss or cache unavailable falls through to Postgres either way.
		if cached, err := s.cache.Get(ctx, userID, id); err == nil {
			return cachedToProduct(cached), nil
		}
	}

	product, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), productToCached(product))
		}()
	}

	return product, nil
}

// List returns the tenant's full product collection, newest first,
// optionally narrowed by the filter.
func (s *ProductService) List(ctx context.Context, userID uuid.UUID, filter domainsvcs.Filter) ([]*models.Product, error) {
	products, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return filter.Apply(products), nil
}

// Update applies a partial patch. Status is rederived by the domain rules;
// the cache entry is invalidated after a successful write.
func (s *ProductService) Update(ctx context.Context, userID, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	if patch.IsZero() {
		return nil, invdomain.ErrEmptyPatch
	}
	product, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), userID, id)
	}
	return product, nil
}

// Delete removes a product and drops its cache entry.
func (s *ProductService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), userID, id)
	}
	return nil
}

func cachedToProduct(c *pkgcache.CachedProduct) *models.Product {
	return &models.Product{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		SKU:       models.SKU(c.SKU),
		Category:  c.Category,
		Quantity:  c.Quantity,
		MinLevel:  c.MinLevel,
		Price:     c.Price,
		Cost:      c.Cost,
		Status:    models.Status(c.Status),
		Supplier:  c.Supplier,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func productToCached(p *models.Product) *pkgcache.CachedProduct {
	return &pkgcache.CachedProduct{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		SKU:       p.SKU.String(),
		Category:  p.Category,
		Quantity:  p.Quantity,
		MinLevel:  p.MinLevel,
		Price:     p.Price,
		Cost:      p.Cost,
		Status:    string(p.Status),
		Supplier:  p.Supplier,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
