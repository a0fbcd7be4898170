package handlers

import (
	"net/http"
	"strconv"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/inventory/application/services"
	domainsvcs "github.com/stockflow/backend/services/inventory/domain/services"
)

// ListProductsResponse wraps the filtered product collection.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total" example:"25"`
} // @name ListProductsResponse

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists the user's products, newest first, narrowed by query filters.
//
//	@Summary		List products
//	@Description	Lists the authenticated user's products with optional search/category/status/supplier/price filters
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string	false	"Case-insensitive substring of name or SKU"
//	@Param			category	query		string	false	"Category ('All' disables)"
//	@Param			status		query		string	false	"Status ('All' disables)"
//	@Param			supplier	query		string	false	"Supplier ('All' disables)"
//	@Param			min_price	query		number	false	"Inclusive lower price bound"
//	@Param			max_price	query		number	false	"Inclusive upper price bound"
//	@Success		200			{object}	ListProductsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.svc.Product.List(r.Context(), userID, filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListProductsResponse{
		Products: toProductResponses(products),
		Total:    len(products),
	})
}

func filterFromQuery(r *http.Request) (domainsvcs.Filter, error) {
	q := r.URL.Query()
	filter := domainsvcs.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Supplier: q.Get("supplier"),
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domainsvcs.Filter{}, errInvalidPriceBound
		}
		filter.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domainsvcs.Filter{}, errInvalidPriceBound
		}
		filter.MaxPrice = &v
	}
	return filter, nil
}
