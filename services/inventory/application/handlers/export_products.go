package handlers

import (
	"fmt"
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/inventory/application/services"
)

// ExportProductsHandler handles GET /products/export requests.
type ExportProductsHandler struct {
	svc *appsvcs.Services
}

// NewExportProductsHandler returns an ExportProductsHandler backed by the given services.
func NewExportProductsHandler(svc *appsvcs.Services) *ExportProductsHandler {
	return &ExportProductsHandler{svc: svc}
}

// Execute streams the full product collection as a CSV attachment.
//
//	@Summary		Export inventory CSV
//	@Description	Downloads the authenticated user's full product list as CSV
//	@Tags			products
//	@Produce		text/csv
//	@Success		200	{string}	string	"CSV file"
//	@Failure		401	{object}	ErrorResponse
//	@Router			/products/export [get]
func (h *ExportProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	data, err := h.svc.Bulk.ExportCSV(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", appsvcs.ExportFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
