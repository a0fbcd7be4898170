package services

import (
	"strings"

	"github.com/stockflow/backend/services/inventory/domain/models"
)

// FilterAll is the wildcard value that disables a categorical filter.
const FilterAll = "All"

// Filter is a pure conjunction of predicates over a product collection.
// Zero values ("" or FilterAll for categorical fields, nil bounds for the
// price range) disable the corresponding predicate, so relaxing any single
// filter can only grow the result set.
type Filter struct {
	// Search matches case-insensitively as a substring of name OR sku.
	Search   string
	Category string
	Status   string
	Supplier string
	MinPrice *float64
	MaxPrice *float64
}

// Matches reports whether p satisfies every active predicate.
func (f Filter) Matches(p *models.Product) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		name := strings.ToLower(p.Name)
		sku := strings.ToLower(p.SKU.String())
		if !strings.Contains(name, needle) && !strings.Contains(sku, needle) {
			return false
		}
	}
	if !matchesChoice(f.Category, p.Category) {
		return false
	}
	if !matchesChoice(f.Status, string(p.Status)) {
		return false
	}
	if !matchesChoice(f.Supplier, p.Supplier) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// Apply returns the products matching the filter, preserving input order.
func (f Filter) Apply(products []*models.Product) []*models.Product {
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func matchesChoice(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// LowStock returns products whose status is Low Stock or Out of Stock,
// preserving input order.
func LowStock(products []*models.Product) []*models.Product {
	out := make([]*models.Product, 0)
	for _, p := range products {
		if p.Status == models.StatusLowStock || p.Status == models.StatusOutOfStock {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories(products []*models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
	}
	return out
}

// Suppliers returns the distinct suppliers in first-seen order.
func Suppliers(products []*models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Supplier]; !ok {
			seen[p.Supplier] = struct{}{}
			out = append(out, p.Supplier)
		}
	}
	return out
}
