package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/inventory/application/services"
	invdomain "github.com/stockflow/backend/services/inventory/domain"
)

// ImportResponse reports a successful CSV import.
type ImportResponse struct {
	Imported int `json:"imported" example:"25"`
} // @name ImportResponse

// ImportErrorResponse reports import failure, with per-row details when the
// batch failed validation.
type ImportErrorResponse struct {
	Error   string   `json:"error"             example:"validation failed for 3 row(s)"`
	Details []string `json:"details,omitempty" example:"Row 4: invalid number format"`
} // @name ImportErrorResponse

// ImportProductsHandler handles POST /products/import requests.
type ImportProductsHandler struct {
	svc *appsvcs.Services
}

// NewImportProductsHandler returns an ImportProductsHandler backed by the given services.
func NewImportProductsHandler(svc *appsvcs.Services) *ImportProductsHandler {
	return &ImportProductsHandler{svc: svc}
}

// Execute imports products from an uploaded CSV file.
// Validation is all-or-nothing: any invalid row blocks the whole batch and
// nothing is written. A valid batch is inserted in a single transaction.
//
//	@Summary		Import inventory CSV
//	@Description	Uploads a CSV file ("file" form field); columns are resolved by header keywords
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"CSV file"
//	@Success		201		{object}	ImportResponse
//	@Failure		400		{object}	ImportErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ImportErrorResponse
//	@Router			/products/import [post]
func (h *ImportProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	file, err := openImportFile(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close() //nolint:errcheck

	result, err := h.svc.Bulk.ImportCSV(r.Context(), userID, file)
	if err != nil {
		writeImportError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ImportResponse{Imported: result.Imported})
}

func openImportFile(r *http.Request) (io.ReadCloser, error) {
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("missing 'file' upload field")
	}
	return file, nil
}

func writeImportError(w http.ResponseWriter, err error) {
	var batchErr *invdomain.BatchValidationError
	if errors.As(err, &batchErr) {
		httpx.JSON(w, http.StatusUnprocessableEntity, ImportErrorResponse{
			Error:   batchErr.Error(),
			Details: batchErr.Details(),
		})
		return
	}

	var missingErr *invdomain.MissingColumnsError
	if errors.As(err, &missingErr) {
		httpx.JSON(w, http.StatusBadRequest, ImportErrorResponse{Error: missingErr.Error()})
		return
	}

	errhttp.WriteError(w, err)
}
