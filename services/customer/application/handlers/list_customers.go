package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/customer/application/services"
)

// ListCustomersResponse is the response body for GET /customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Count     int                `json:"count" example:"7"`
} // @name ListCustomersResponse

// ListCustomersHandler handles GET /customers requests.
type ListCustomersHandler struct {
	svc *appsvcs.Services
}

// NewListCustomersHandler returns a ListCustomersHandler backed by the given services.
func NewListCustomersHandler(svc *appsvcs.Services) *ListCustomersHandler {
	return &ListCustomersHandler{svc: svc}
}

// Execute lists the authenticated user's customers, newest first.
//
//	@Summary		List customers
//	@Description	Lists all customers owned by the authenticated user, newest first
//	@Tags			customers
//	@Produce		json
//	@Success		200	{object}	ListCustomersResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/customers [get]
func (h *ListCustomersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	customers, err := h.svc.Customer.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListCustomersResponse{
		Customers: toCustomerResponses(customers),
		Count:     len(customers),
	})
}
