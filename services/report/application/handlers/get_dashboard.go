package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/report/application/services"
)

// GetDashboardHandler handles GET /dashboard requests.
type GetDashboardHandler struct {
	svc *appsvcs.Services
}

// NewGetDashboardHandler returns a GetDashboardHandler backed by the given services.
func NewGetDashboardHandler(svc *appsvcs.Services) *GetDashboardHandler {
	return &GetDashboardHandler{svc: svc}
}

// Execute computes the dashboard KPI view for a trailing-day window.
//
//	@Summary		Dashboard
//	@Description	Computes inventory and order KPIs for a trailing-day window
//	@Tags			reports
//	@Produce		json
//	@Param			range	query		string	false	"Trailing window: 7d, 14d, 30d or 90d"	default(7d)
//	@Success		200		{object}	DashboardResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/dashboard [get]
func (h *GetDashboardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	days, err := daysFromQuery(r.URL.Query().Get("range"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	view, err := h.svc.Report.Dashboard(r.Context(), userID, days)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := DashboardResponse{
		TotalInventoryValue:  view.TotalInventoryValue,
		ActiveProducts:       view.ActiveProducts,
		PendingOrders:        view.PendingOrders,
		CriticalStockItems:   view.CriticalStockItems,
		LowStockAlerts:       make([]LowStockAlert, 0, len(view.LowStockAlerts)),
		CategoryDistribution: view.CategoryDistribution,
		RevenueThisWeek:      view.RevenueThisWeek,
		RevenueLastWeek:      view.RevenueLastWeek,
	}
	for _, p := range view.LowStockAlerts {
		resp.LowStockAlerts = append(resp.LowStockAlerts, LowStockAlert{
			Name:     p.Name,
			SKU:      p.SKU.String(),
			Quantity: p.Quantity,
			MinLevel: p.MinLevel,
			Status:   string(p.Status),
		})
	}

	httpx.JSON(w, http.StatusOK, resp)
}
