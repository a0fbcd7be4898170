package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	invmodels "github.com/stockflow/backend/services/inventory/domain/models"
)

func reportProduct(category string, quantity, minLevel int, price float64) *invmodels.Product {
	return &invmodels.Product{
		ID:       uuid.New(),
		Category: category,
		Quantity: quantity,
		MinLevel: minLevel,
		Price:    price,
		Status:   invmodels.DeriveStatus(quantity, minLevel),
	}
}

func TestRenderEfficiencyReport_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	products := []*invmodels.Product{
		reportProduct("Electronics", 40, 10, 20),
		reportProduct("Electronics", 5, 10, 10),
		reportProduct("Furniture", 0, 5, 100),
	}

	first := RenderEfficiencyReport(products, now)
	second := RenderEfficiencyReport(products, now)
	if first != second {
		t.Fatal("report must be deterministic for the same inputs")
	}
}

func TestRenderEfficiencyReport_Sections(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	products := []*invmodels.Product{
		reportProduct("Electronics", 40, 10, 20),
		reportProduct("Electronics", 5, 10, 10),
		reportProduct("Furniture", 0, 5, 100),
	}

	got := RenderEfficiencyReport(products, now)

	for _, want := range []string{
		"# Inventory Optimization Report",
		"**3 products**",
		"**Stock Health Status:** Good",
		"- **Low Stock Items:** 1",
		"- **Out of Stock Items:** 1",
		"- **Healthy Stock:** 1",
		"**Electronics** has the highest inventory quantity (45 units)",
		"**Furniture** has the lowest inventory quantity (0 units)",
		"*Last updated: 2026-03-15*",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderEfficiencyReport_HealthyInventory(t *testing.T) {
	now := time.Now()
	products := []*invmodels.Product{reportProduct("Tools", 50, 10, 5)}

	got := RenderEfficiencyReport(products, now)
	if !strings.Contains(got, "**Stock Health Status:** Excellent") {
		t.Fatal("expected Excellent health label")
	}
	if !strings.Contains(got, "### All Stock Levels Healthy") {
		t.Fatal("expected healthy-stock section")
	}
	if !strings.Contains(got, "- No immediate restocking required.") {
		t.Fatal("expected no-restock line")
	}
}

func TestRenderEfficiencyReport_EmptyInventory(t *testing.T) {
	got := RenderEfficiencyReport(nil, time.Now())
	if !strings.Contains(got, "**0 products**") {
		t.Fatal("expected zero product count")
	}
	if !strings.Contains(got, "No category data available.") {
		t.Fatal("expected empty category section")
	}
}
