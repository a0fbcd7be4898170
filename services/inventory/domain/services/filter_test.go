package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/inventory/domain/models"
)

func product(t *testing.T, name, sku, category, supplier string, quantity, minLevel int, price float64) *models.Product {
	t.Helper()
	s, err := models.NewSKU(sku)
	if err != nil {
		t.Fatalf("NewSKU(%q): %v", sku, err)
	}
	p, err := models.NewProduct(uuid.New(), name, s, category, quantity, minLevel, price, 0, supplier)
	if err != nil {
		t.Fatalf("NewProduct(%q): %v", name, err)
	}
	return p
}

func testProducts(t *testing.T) []*models.Product {
	t.Helper()
	return []*models.Product{
		product(t, "Wireless Keyboard", "SKU-1001", "Electronics", "TechGlobal", 42, 10, 79.99),
		product(t, "USB Cable", "SKU-1002", "Electronics", "CableCo", 5, 10, 9.99),
		product(t, "Office Chair", "CHAIR-1", "Furniture", "SitWell", 0, 5, 199.00),
		product(t, "Desk Lamp", "LAMP-1", "Furniture", "TechGlobal", 30, 10, 35.50),
	}
}

func TestFilter_Conjunction(t *testing.T) {
	products := testProducts(t)
	min, max := 5.0, 100.0

	f := Filter{
		Search:   "keyboard",
		Category: "Electronics",
		Status:   string(models.StatusInStock),
		Supplier: "TechGlobal",
		MinPrice: &min,
		MaxPrice: &max,
	}
	got := f.Apply(products)
	if len(got) != 1 || got[0].Name != "Wireless Keyboard" {
		t.Fatalf("expected only the keyboard, got %d results", len(got))
	}
}

func TestFilter_SearchMatchesNameOrSKU(t *testing.T) {
	products := testProducts(t)

	byName := Filter{Search: "cable"}.Apply(products)
	if len(byName) != 1 || byName[0].Name != "USB Cable" {
		t.Fatalf("search by name: expected USB Cable, got %d results", len(byName))
	}

	bySKU := Filter{Search: "chair-1"}.Apply(products)
	if len(bySKU) != 1 || bySKU[0].Name != "Office Chair" {
		t.Fatalf("search by sku: expected Office Chair, got %d results", len(bySKU))
	}
}

func TestFilter_AllWildcardDisablesPredicate(t *testing.T) {
	products := testProducts(t)

	all := Filter{Category: FilterAll, Status: FilterAll, Supplier: FilterAll}.Apply(products)
	if len(all) != len(products) {
		t.Fatalf("wildcard filter should match everything, got %d of %d", len(all), len(products))
	}
}

// Relaxing any single predicate must never shrink the result set.
func TestFilter_MonotonicRelaxation(t *testing.T) {
	products := testProducts(t)
	min := 5.0

	strict := Filter{
		Search:   "e",
		Category: "Electronics",
		Supplier: "TechGlobal",
		MinPrice: &min,
	}
	strictSet := strict.Apply(products)

	relaxations := map[string]Filter{
		"search":   {Category: strict.Category, Supplier: strict.Supplier, MinPrice: strict.MinPrice},
		"category": {Search: strict.Search, Category: FilterAll, Supplier: strict.Supplier, MinPrice: strict.MinPrice},
		"supplier": {Search: strict.Search, Category: strict.Category, Supplier: FilterAll, MinPrice: strict.MinPrice},
		"price":    {Search: strict.Search, Category: strict.Category, Supplier: strict.Supplier},
	}
	for name, relaxed := range relaxations {
		t.Run(name, func(t *testing.T) {
			relaxedSet := relaxed.Apply(products)
			if len(relaxedSet) < len(strictSet) {
				t.Fatalf("relaxing %s shrank the result set: %d < %d", name, len(relaxedSet), len(strictSet))
			}
			for _, p := range strictSet {
				found := false
				for _, q := range relaxedSet {
					if q.ID == p.ID {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("relaxing %s dropped %q from the result set", name, p.Name)
				}
			}
		})
	}
}

func TestLowStock(t *testing.T) {
	products := testProducts(t)
	low := LowStock(products)
	if len(low) != 2 {
		t.Fatalf("expected 2 low/out-of-stock products, got %d", len(low))
	}
	// Stable original order: USB Cable (low) before Office Chair (out).
	if low[0].Name != "USB Cable" || low[1].Name != "Office Chair" {
		t.Fatalf("expected stable input order, got %q then %q", low[0].Name, low[1].Name)
	}
}

func TestCategoriesAndSuppliers_FirstSeenOrder(t *testing.T) {
	products := testProducts(t)

	cats := Categories(products)
	if len(cats) != 2 || cats[0] != "Electronics" || cats[1] != "Furniture" {
		t.Fatalf("unexpected categories: %v", cats)
	}

	sups := Suppliers(products)
	want := []string{"TechGlobal", "CableCo", "SitWell"}
	if len(sups) != len(want) {
		t.Fatalf("unexpected suppliers: %v", sups)
	}
	for i := range want {
		if sups[i] != want[i] {
			t.Fatalf("unexpected supplier order: %v", sups)
		}
	}
}
