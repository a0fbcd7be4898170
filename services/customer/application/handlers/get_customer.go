package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/customer/application/services"
)

var errInvalidCustomerID = errors.New("invalid customer id")

// GetCustomerHandler handles GET /customers/{id} requests.
type GetCustomerHandler struct {
	svc *appsvcs.Services
}

// NewGetCustomerHandler returns a GetCustomerHandler backed by the given services.
func NewGetCustomerHandler(svc *appsvcs.Services) *GetCustomerHandler {
	return &GetCustomerHandler{svc: svc}
}

// Execute fetches a single customer by ID within the user's tenant scope.
//
//	@Summary		Get customer
//	@Description	Fetches one customer owned by the authenticated user
//	@Tags			customers
//	@Produce		json
//	@Param			id	path		string	true	"Customer ID"
//	@Success		200	{object}	CustomerResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/customers/{id} [get]
func (h *GetCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, errInvalidCustomerID.Error())
		return
	}

	customer, err := h.svc.Customer.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCustomerResponse(customer))
}
