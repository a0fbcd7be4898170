package views

import (
	"testing"
	"time"

	"github.com/google/uuid"

	invmodels "github.com/stockflow/backend/services/inventory/domain/models"
	ordermodels "github.com/stockflow/backend/services/order/domain/models"
)

func product(category string, quantity, minLevel int, price float64) *invmodels.Product {
	return &invmodels.Product{
		ID:       uuid.New(),
		Category: category,
		Quantity: quantity,
		MinLevel: minLevel,
		Price:    price,
		Status:   invmodels.DeriveStatus(quantity, minLevel),
	}
}

func order(status ordermodels.OrderStatus, total float64, date time.Time) *ordermodels.Order {
	return &ordermodels.Order{
		ID:     uuid.New(),
		Status: status,
		Total:  total,
		Date:   date,
	}
}

func TestTotalInventoryValue(t *testing.T) {
	products := []*invmodels.Product{
		product("Electronics", 10, 5, 2.5),
		product("Furniture", 3, 5, 100),
	}
	if got := TotalInventoryValue(products); got != 325 {
		t.Fatalf("expected 325, got %v", got)
	}
	if got := TotalInventoryValue(nil); got != 0 {
		t.Fatalf("expected 0 for empty inventory, got %v", got)
	}
}

func TestTopLowStock_CapsWithoutSorting(t *testing.T) {
	var products []*invmodels.Product
	for i := 0; i < 8; i++ {
		products = append(products, product("Electronics", i%3, 5, 10))
	}
	products = append(products, product("Electronics", 100, 5, 10))

	top := TopLowStock(products, LowStockAlertLimit)
	if len(top) != LowStockAlertLimit {
		t.Fatalf("expected %d alerts, got %d", LowStockAlertLimit, len(top))
	}
	// Stable input order, no severity sort.
	for i := 0; i < LowStockAlertLimit; i++ {
		if top[i].ID != products[i].ID {
			t.Fatal("expected first-seen order preserved")
		}
	}
}

func TestPendingOrders(t *testing.T) {
	now := time.Now()
	orders := []*ordermodels.Order{
		order(ordermodels.StatusPending, 10, now),
		order(ordermodels.StatusShipped, 20, now),
		order(ordermodels.StatusPending, 30, now),
	}
	if got := PendingOrders(orders); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
}

func TestCategoryDistribution_FirstSeenOrder(t *testing.T) {
	products := []*invmodels.Product{
		product("Electronics", 5, 1, 1),
		product("Furniture", 2, 1, 1),
		product("Electronics", 3, 1, 1),
	}
	got := CategoryDistribution(products)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Name != "Electronics" || got[0].Value != 8 {
		t.Fatalf("unexpected first slice: %+v", got[0])
	}
	if got[1].Name != "Furniture" || got[1].Value != 2 {
		t.Fatalf("unexpected second slice: %+v", got[1])
	}
}

func TestOrdersWithinDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := []*ordermodels.Order{
		order(ordermodels.StatusPending, 1, now.AddDate(0, 0, -1)),
		order(ordermodels.StatusPending, 2, now.AddDate(0, 0, -7)),
		order(ordermodels.StatusPending, 3, now.AddDate(0, 0, -8)),
	}
	got := OrdersWithinDays(orders, 7, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 orders in window, got %d", len(got))
	}
	// Boundary: exactly `days` old stays in.
	if got[1].Total != 2 {
		t.Fatalf("expected boundary order kept, got total %v", got[1].Total)
	}
}

func TestRevenueSeries(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	// Newest-first, as stored.
	var orders []*ordermodels.Order
	for i := 0; i < 10; i++ {
		orders = append(orders, order(ordermodels.StatusPending, float64(100-i), now.AddDate(0, 0, -i)))
	}

	t.Run("this week takes first 7 reversed", func(t *testing.T) {
		got := RevenueSeries(orders, true)
		if len(got) != 7 {
			t.Fatalf("expected 7 points, got %d", len(got))
		}
		// Chronological: oldest of the window first.
		if got[0].Sales != 94 || got[6].Sales != 100 {
			t.Fatalf("expected reversed window, got first %v last %v", got[0].Sales, got[6].Sales)
		}
		if got[6].Name != now.Format("Mon") {
			t.Fatalf("expected weekday label %q, got %q", now.Format("Mon"), got[6].Name)
		}
	})

	t.Run("last week takes next 7", func(t *testing.T) {
		got := RevenueSeries(orders, false)
		if len(got) != 3 {
			t.Fatalf("expected 3 points, got %d", len(got))
		}
		if got[0].Sales != 91 || got[2].Sales != 93 {
			t.Fatalf("expected reversed tail window, got first %v last %v", got[0].Sales, got[2].Sales)
		}
	})

	t.Run("empty window yields placeholder", func(t *testing.T) {
		got := RevenueSeries(nil, true)
		if len(got) != 1 || got[0].Name != "No data" || got[0].Sales != 0 {
			t.Fatalf("expected single zero placeholder, got %+v", got)
		}
	})
}
