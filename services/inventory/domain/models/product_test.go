package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minLevel int
		want     Status
	}{
		{"zero quantity", 0, 10, StatusOutOfStock},
		{"zero quantity zero min level", 0, 0, StatusOutOfStock},
		{"at min level", 10, 10, StatusLowStock},
		{"below min level", 3, 10, StatusLowStock},
		{"one above min level", 11, 10, StatusInStock},
		{"far above min level", 500, 10, StatusInStock},
		{"positive quantity zero min level", 1, 0, StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.quantity, tt.minLevel); got != tt.want {
				t.Fatalf("DeriveStatus(%d, %d) = %q, want %q", tt.quantity, tt.minLevel, got, tt.want)
			}
		})
	}
}

func mustSKU(t *testing.T, s string) SKU {
	t.Helper()
	sku, err := NewSKU(s)
	if err != nil {
		t.Fatalf("NewSKU(%q): %v", s, err)
	}
	return sku
}

func TestNewProduct(t *testing.T) {
	userID := uuid.New()
	sku := mustSKU(t, "SKU-100")

	p, err := NewProduct(userID, "Widget", sku, "Tools", 20, 10, 100, 0, "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if p.Status != StatusInStock {
		t.Fatalf("expected derived status In Stock, got %q", p.Status)
	}
	if p.Cost != 100*DefaultCostRatio {
		t.Fatalf("expected cost fallback %v, got %v", 100*DefaultCostRatio, p.Cost)
	}
}

func TestNewProduct_ExplicitCostKept(t *testing.T) {
	p, err := NewProduct(uuid.New(), "Widget", mustSKU(t, "SKU-100"), "Tools", 5, 10, 100, 42, "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Cost != 42 {
		t.Fatalf("expected cost 42, got %v", p.Cost)
	}
	if p.Status != StatusLowStock {
		t.Fatalf("expected Low Stock, got %q", p.Status)
	}
}

func TestNewProduct_RejectsNegatives(t *testing.T) {
	sku := mustSKU(t, "SKU-100")
	cases := []struct {
		name               string
		quantity, minLevel int
		price, cost        float64
	}{
		{"negative quantity", -1, 10, 10, 0},
		{"negative min level", 1, -1, 10, 0},
		{"negative price", 1, 10, -1, 0},
		{"negative cost", 1, 10, 10, -1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(uuid.New(), "Widget", sku, "Tools", tt.quantity, tt.minLevel, tt.price, tt.cost, "Acme")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestProductPatch_IsZero(t *testing.T) {
	if !(ProductPatch{}).IsZero() {
		t.Fatal("empty patch should be zero")
	}
	name := "x"
	if (ProductPatch{Name: &name}).IsZero() {
		t.Fatal("patch with a field should not be zero")
	}
}

func TestProductPatch_Apply_RederivesStatus(t *testing.T) {
	p, err := NewProduct(uuid.New(), "Widget", mustSKU(t, "SKU-100"), "Tools", 20, 10, 100, 0, "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusInStock {
		t.Fatalf("precondition: expected In Stock, got %q", p.Status)
	}

	qty := 0
	if err := (ProductPatch{Quantity: &qty}).Apply(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusOutOfStock {
		t.Fatalf("expected rederived Out of Stock, got %q", p.Status)
	}

	qty = 5
	if err := (ProductPatch{Quantity: &qty}).Apply(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusLowStock {
		t.Fatalf("expected rederived Low Stock, got %q", p.Status)
	}

	// Raising the threshold alone can also change the status.
	minLevel := 3
	if err := (ProductPatch{MinLevel: &minLevel}).Apply(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusInStock {
		t.Fatalf("expected rederived In Stock, got %q", p.Status)
	}
}

func TestProductPatch_Apply_RejectsNegatives(t *testing.T) {
	p, err := NewProduct(uuid.New(), "Widget", mustSKU(t, "SKU-100"), "Tools", 20, 10, 100, 0, "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := -1
	if err := (ProductPatch{Quantity: &bad}).Apply(p); err == nil {
		t.Fatal("expected error for negative quantity")
	}
	badPrice := -0.01
	if err := (ProductPatch{Price: &badPrice}).Apply(p); err == nil {
		t.Fatal("expected error for negative price")
	}
}
