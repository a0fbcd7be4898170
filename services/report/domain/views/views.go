// Package views holds the pure derivations behind the dashboard: KPI
// aggregates, category distribution and the revenue chart series. All
// functions are side-effect free and recomputed per request.
package views

import (
	"time"

	invmodels "github.com/stockflow/backend/services/inventory/domain/models"
	ordermodels "github.com/stockflow/backend/services/order/domain/models"
)

// LowStockAlertLimit caps the dashboard alert table.
const LowStockAlertLimit = 5

// CategoryCount is one slice of the category distribution chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RevenuePoint is one bar of the revenue chart.
type RevenuePoint struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// TotalInventoryValue sums price × quantity across all products.
func TotalInventoryValue(products []*invmodels.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// LowStock returns products whose status is Low Stock or Out of Stock,
// preserving input order.
func LowStock(products []*invmodels.Product) []*invmodels.Product {
	var out []*invmodels.Product
	for _, p := range products {
		if p.Status == invmodels.StatusLowStock || p.Status == invmodels.StatusOutOfStock {
			out = append(out, p)
		}
	}
	return out
}

// TopLowStock returns the first n low-stock products in stable input order.
// No severity sort is applied.
func TopLowStock(products []*invmodels.Product, n int) []*invmodels.Product {
	low := LowStock(products)
	if len(low) > n {
		low = low[:n]
	}
	return low
}

// PendingOrders counts orders with status Pending.
func PendingOrders(orders []*ordermodels.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status == ordermodels.StatusPending {
			count++
		}
	}
	return count
}

// CategoryDistribution sums product quantity per category. Output order is
// first-seen category order.
func CategoryDistribution(products []*invmodels.Product) []CategoryCount {
	var out []CategoryCount
	index := make(map[string]int)
	for _, p := range products {
		if i, ok := index[p.Category]; ok {
			out[i].Value += p.Quantity
			continue
		}
		index[p.Category] = len(out)
		out = append(out, CategoryCount{Name: p.Category, Value: p.Quantity})
	}
	return out
}

// OrdersWithinDays keeps orders whose date is on or after now minus the
// trailing-day window, preserving input order (newest first as stored).
func OrdersWithinDays(orders []*ordermodels.Order, days int, now time.Time) []*ordermodels.Order {
	cutoff := now.AddDate(0, 0, -days)
	var out []*ordermodels.Order
	for _, o := range orders {
		if !o.Date.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out
}

// RevenueSeries builds the chart series from a newest-first order list.
// thisWeek selects the first 7 orders, otherwise the next 7 ("last week").
// The slice is reversed to chronological order for charting. An empty slice
// yields a single zero placeholder point.
func RevenueSeries(orders []*ordermodels.Order, thisWeek bool) []RevenuePoint {
	var window []*ordermodels.Order
	if thisWeek {
		window = sliceRange(orders, 0, 7)
	} else {
		window = sliceRange(orders, 7, 14)
	}

	if len(window) == 0 {
		return []RevenuePoint{{Name: "No data", Sales: 0}}
	}

	out := make([]RevenuePoint, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		o := window[i]
		out = append(out, RevenuePoint{
			Name:  o.Date.Format("Mon"),
			Sales: o.Total,
		})
	}
	return out
}

func sliceRange(orders []*ordermodels.Order, lo, hi int) []*ordermodels.Order {
	if lo >= len(orders) {
		return nil
	}
	if hi > len(orders) {
		hi = len(orders)
	}
	return orders[lo:hi]
}
