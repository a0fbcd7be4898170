package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/customer/application/services"
)

// DeleteCustomerHandler handles DELETE /customers/{id} requests.
type DeleteCustomerHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCustomerHandler returns a DeleteCustomerHandler backed by the given services.
func NewDeleteCustomerHandler(svc *appsvcs.Services) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{svc: svc}
}

// Execute deletes a customer.
//
//	@Summary		Delete customer
//	@Description	Deletes a customer owned by the authenticated user
//	@Tags			customers
//	@Param			id	path	string	true	"Customer ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/customers/{id} [delete]
func (h *DeleteCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Customer.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
