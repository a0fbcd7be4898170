package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/customer/application/services"
)

// CreateCustomerRequest is the request body for POST /customers.
type CreateCustomerRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=200" example:"Acme Corp"`
	Email   *string `json:"email"   validate:"omitempty,email"        example:"orders@acme.example"`
	Phone   *string `json:"phone"   validate:"omitempty,max=50"       example:"+1-555-0100"`
	Address *string `json:"address" validate:"omitempty,max=500"      example:"42 Warehouse Rd"`
} // @name CreateCustomerRequest

// PostCustomerHandler handles POST /customers requests.
type PostCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPostCustomerHandler returns a PostCustomerHandler backed by the given services.
func NewPostCustomerHandler(svc *appsvcs.Services) *PostCustomerHandler {
	return &PostCustomerHandler{svc: svc}
}

// Execute creates a new customer.
//
//	@Summary		Create customer
//	@Description	Creates a new customer record for the authenticated user
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCustomerRequest	true	"Customer creation request"
//	@Success		201		{object}	CustomerResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/customers [post]
func (h *PostCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateCustomerRequest](w, r)
	if !ok {
		return
	}

	customer, err := h.svc.Customer.Create(r.Context(), userID, appsvcs.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toCustomerResponse(customer))
}
