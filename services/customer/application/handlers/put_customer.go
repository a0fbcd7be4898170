package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/customer/application/services"
	"github.com/stockflow/backend/services/customer/domain/models"
)

// UpdateCustomerRequest is the request body for PUT /customers/{id}. All
// fields are optional; omitted fields keep their stored values, and an
// explicit empty string clears an optional field.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=200"    example:"Acme Corp"`
	Email   *string `json:"email"   validate:"omitempty,email"         example:"orders@acme.example"`
	Phone   *string `json:"phone"   validate:"omitempty,max=50"          example:"+1-555-0100"`
	Address *string `json:"address" validate:"omitempty,max=500"         example:"42 Warehouse Rd"`
} // @name UpdateCustomerRequest

// PutCustomerHandler handles PUT /customers/{id} requests.
type PutCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPutCustomerHandler returns a PutCustomerHandler backed by the given services.
func NewPutCustomerHandler(svc *appsvcs.Services) *PutCustomerHandler {
	return &PutCustomerHandler{svc: svc}
}

// Execute applies a partial update to a customer.
//
//	@Summary		Update customer
//	@Description	Applies a partial update to a customer owned by the authenticated user
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Customer ID"
//	@Param			request	body		UpdateCustomerRequest	true	"Fields to update"
//	@Success		200		{object}	CustomerResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/customers/{id} [put]
func (h *PutCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateCustomerRequest](w, r)
	if !ok {
		return
	}

	customer, err := h.svc.Customer.Update(r.Context(), userID, id, models.CustomerPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCustomerResponse(customer))
}
