package handlers

import (
	"strconv"
	"strings"

	reportdomain "github.com/stockflow/backend/services/report/domain"
	"github.com/stockflow/backend/services/report/domain/views"
)

// LowStockAlert is one row of the dashboard's low-stock table.
type LowStockAlert struct {
	Name     string `json:"name"     example:"Wireless Keyboard"`
	SKU      string `json:"sku"      example:"SKU-1042"`
	Quantity int    `json:"quantity" example:"3"`
	MinLevel int    `json:"minLevel" example:"10"`
	Status   string `json:"status"   example:"Low Stock"`
} // @name LowStockAlert

// DashboardResponse is the response body for GET /dashboard.
type DashboardResponse struct {
	TotalInventoryValue  float64               `json:"totalInventoryValue" example:"15230.50"`
	ActiveProducts       int                   `json:"activeProducts"      example:"48"`
	PendingOrders        int                   `json:"pendingOrders"       example:"6"`
	CriticalStockItems   int                   `json:"criticalStockItems"  example:"4"`
	LowStockAlerts       []LowStockAlert       `json:"lowStockAlerts"`
	CategoryDistribution []views.CategoryCount `json:"categoryDistribution"`
	RevenueThisWeek      []views.RevenuePoint  `json:"revenueThisWeek"`
	RevenueLastWeek      []views.RevenuePoint  `json:"revenueLastWeek"`
} // @name DashboardResponse

// EfficiencyReportResponse is the response body for POST /reports/efficiency.
type EfficiencyReportResponse struct {
	Report string `json:"report" example:"# Inventory Optimization Report..."`
} // @name EfficiencyReportResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid date range"`
} // @name ErrorResponse

// daysFromQuery parses the range query parameter ("7d", "14d", "30d", "90d").
// An absent parameter defaults to 7 days.
func daysFromQuery(raw string) (int, error) {
	if raw == "" {
		return 7, nil
	}
	days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
	if err != nil {
		return 0, reportdomain.ErrInvalidDateRange
	}
	return days, nil
}
