package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/report/application/services"
)

// ExportReportHandler handles GET /reports/export requests.
type ExportReportHandler struct {
	svc *appsvcs.Services
}

// NewExportReportHandler returns an ExportReportHandler backed by the given services.
func NewExportReportHandler(svc *appsvcs.Services) *ExportReportHandler {
	return &ExportReportHandler{svc: svc}
}

// Execute downloads the JSON report document for a trailing-day window.
//
//	@Summary		Export report
//	@Description	Downloads a JSON report of KPIs, windowed orders, low-stock products and category distribution
//	@Tags			reports
//	@Produce		json
//	@Param			range	query	string	false	"Trailing window: 7d, 14d, 30d or 90d"	default(7d)
//	@Success		200
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/reports/export [get]
func (h *ExportReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	doc, err := h.svc.Report.Export(r.Context(), userID, days)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	filename := fmt.Sprintf("stockflow-report-%s.json", doc.GeneratedAt.Format(time.DateOnly))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	httpx.JSON(w, http.StatusOK, doc)
}
