package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/order/application/services"
)

// ListOrdersResponse is the response body for GET /orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count" example:"12"`
} // @name ListOrdersResponse

// ListOrdersHandler handles GET /orders requests.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

// NewListOrdersHandler returns a ListOrdersHandler backed by the given services.
func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists the authenticated user's orders, newest first.
//
//	@Summary		List orders
//	@Description	Lists all orders owned by the authenticated user, newest first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	ListOrdersResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/orders [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	orders, err := h.svc.Order.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListOrdersResponse{
		Orders: toOrderResponses(orders),
		Count:  len(orders),
	})
}
