package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	invappsvcs "github.com/stockflow/backend/services/inventory/application/services"
	invmodels "github.com/stockflow/backend/services/inventory/domain/models"
	orderappsvcs "github.com/stockflow/backend/services/order/application/services"
	ordermodels "github.com/stockflow/backend/services/order/domain/models"
	reportdomain "github.com/stockflow/backend/services/report/domain"
	domainsvcs "github.com/stockflow/backend/services/report/domain/services"
	"github.com/stockflow/backend/services/report/domain/views"
)

// DashboardView is the computed dashboard state for one tenant and window.
type DashboardView struct {
	TotalInventoryValue  float64
	ActiveProducts       int
	PendingOrders        int
	CriticalStockItems   int
	LowStockAlerts       []*invmodels.Product
	CategoryDistribution []views.CategoryCount
	RevenueThisWeek      []views.RevenuePoint
	RevenueLastWeek      []views.RevenuePoint
}

// ReportOrder is one order row in the exported report document.
type ReportOrder struct {
	ID       uuid.UUID `json:"id"`
	Customer string    `json:"customer"`
	Date     time.Time `json:"date"`
	Total    float64   `json:"total"`
	Status   string    `json:"status"`
	Items    int       `json:"items"`
}

// ReportLowStockProduct is one low-stock row in the exported report document.
type ReportLowStockProduct struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	MinLevel int    `json:"minLevel"`
	Status   string `json:"status"`
}

// ReportSummary holds the KPI block of the exported report document.
type ReportSummary struct {
	TotalInventoryValue float64 `json:"totalInventoryValue"`
	ActiveProducts      int     `json:"activeProducts"`
	PendingOrders       int     `json:"pendingOrders"`
	CriticalStockItems  int     `json:"criticalStockItems"`
}

// ReportDocument is the JSON report export.
type ReportDocument struct {
	GeneratedAt          time.Time               `json:"generatedAt"`
	DateRange            string                  `json:"dateRange"`
	Summary              ReportSummary           `json:"summary"`
	Orders               []ReportOrder           `json:"orders"`
	LowStockProducts     []ReportLowStockProduct `json:"lowStockProducts"`
	CategoryDistribution []views.CategoryCount   `json:"categoryDistribution"`
}

// ReportService computes dashboard views and report documents from the
// inventory and order collections. Reads go through per-request tenant-bound
// collection stores, so every derivation in one request works from a single
// consistent snapshot.
type ReportService struct {
	products *invappsvcs.ProductService
	orders   *orderappsvcs.OrderService
}

// NewReportService returns a ReportService reading through the given services.
func NewReportService(products *invappsvcs.ProductService, orders *orderappsvcs.OrderService) *ReportService {
	return &ReportService{products: products, orders: orders}
}

// RangeLabel returns the human label for a trailing-day window.
// Returns an error for windows outside the supported set.
func RangeLabel(days int) (string, error) {
	switch days {
	case 7, 14, 30, 90:
		return fmt.Sprintf("Last %d Days", days), nil
	}
	return "", fmt.Errorf("%w: unsupported window %d days", reportdomain.ErrInvalidDateRange, days)
}

// Dashboard loads both base collections concurrently and derives the KPI view.
func (s *ReportService) Dashboard(ctx context.Context, userID uuid.UUID, days int) (*DashboardView, error) {
	if _, err := RangeLabel(days); err != nil {
		return nil, err
	}

	products, orders, err := s.loadCollections(ctx, userID)
	if err != nil {
		return nil, err
	}

	windowed := views.OrdersWithinDays(orders, days, time.Now().UTC())
	lowStock := views.LowStock(products)

	return &DashboardView{
		TotalInventoryValue:  views.TotalInventoryValue(products),
		ActiveProducts:       len(products),
		PendingOrders:        views.PendingOrders(windowed),
		CriticalStockItems:   len(lowStock),
		LowStockAlerts:       views.TopLowStock(products, views.LowStockAlertLimit),
		CategoryDistribution: views.CategoryDistribution(products),
		RevenueThisWeek:      views.RevenueSeries(windowed, true),
		RevenueLastWeek:      views.RevenueSeries(windowed, false),
	}, nil
}

// Export builds the JSON report document for the given trailing-day window.
func (s *ReportService) Export(ctx context.Context, userID uuid.UUID, days int) (*ReportDocument, error) {
	label, err := RangeLabel(days)
	if err != nil {
		return nil, err
	}

	products, orders, err := s.loadCollections(ctx, userID)
	if err != nil {
		return nil, err
	}

	windowed := views.OrdersWithinDays(orders, days, time.Now().UTC())
	lowStock := views.LowStock(products)

	doc := &ReportDocument{
		GeneratedAt: time.Now().UTC(),
		DateRange:   label,
		Summary: ReportSummary{
			TotalInventoryValue: views.TotalInventoryValue(products),
			ActiveProducts:      len(products),
			PendingOrders:       views.PendingOrders(windowed),
			CriticalStockItems:  len(lowStock),
		},
		Orders:               make([]ReportOrder, 0, len(windowed)),
		LowStockProducts:     make([]ReportLowStockProduct, 0, len(lowStock)),
		CategoryDistribution: views.CategoryDistribution(products),
	}
	for _, o := range windowed {
		doc.Orders = append(doc.Orders, ReportOrder{
			ID:       o.ID,
			Customer: o.CustomerName,
			Date:     o.Date,
			Total:    o.Total,
			Status:   string(o.Status),
			Items:    o.ItemsCount,
		})
	}
	for _, p := range lowStock {
		doc.LowStockProducts = append(doc.LowStockProducts, ReportLowStockProduct{
			Name:     p.Name,
			SKU:      p.SKU.String(),
			Quantity: p.Quantity,
			MinLevel: p.MinLevel,
			Status:   string(p.Status),
		})
	}
	return doc, nil
}

// Efficiency renders the Markdown efficiency report from the current inventory.
func (s *ReportService) Efficiency(ctx context.Context, userID uuid.UUID) (string, error) {
	store := invappsvcs.NewProductStore(s.products)
	if err := store.SetTenant(ctx, userID); err != nil {
		return "", fmt.Errorf("load products: %w", err)
	}
	_, products, _ := store.Snapshot()
	return domainsvcs.RenderEfficiencyReport(products, time.Now().UTC()), nil
}

// loadCollections binds a product and an order store to the tenant
// concurrently and returns both snapshots.
func (s *ReportService) loadCollections(ctx context.Context, userID uuid.UUID) ([]*invmodels.Product, []*ordermodels.Order, error) {
	productStore := invappsvcs.NewProductStore(s.products)
	orderStore := orderappsvcs.NewOrderStore(s.orders)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := productStore.SetTenant(gctx, userID); err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := orderStore.SetTenant(gctx, userID); err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	_, products, _ := productStore.Snapshot()
	_, orders, _ := orderStore.Snapshot()
	return products, orders, nil
}
