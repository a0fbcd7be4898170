package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/inventory/application/services"
	"github.com/stockflow/backend/services/inventory/domain/models"
)

// UpdateProductRequest is the request body for PUT /products/{id}.
// All fields are optional; only provided fields are changed. Status cannot be
// set directly — it is rederived from quantity and min level.
type UpdateProductRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=2,max=100"`
	SKU      *string  `json:"sku"      validate:"omitempty,min=3,max=50"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0,lte=100000"`
	MinLevel *int     `json:"minLevel" validate:"omitempty,gte=0"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0,lte=1000000"`
	Cost     *float64 `json:"cost"     validate:"omitempty,gte=0,lte=1000000"`
	Supplier *string  `json:"supplier" validate:"omitempty,min=1"`
} // @name UpdateProductRequest

// PutProductHandler handles PUT /products/{id} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services) *PutProductHandler {
	return &PutProductHandler{svc: svc}
}

// Execute applies a partial update to a product.
//
//	@Summary		Update product
//	@Description	Applies a partial-field patch to one product; status is rederived
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			request	body		UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, errInvalidProductID.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	patch := models.ProductPatch{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		MinLevel: req.MinLevel,
		Price:    req.Price,
		Cost:     req.Cost,
		Supplier: req.Supplier,
	}
	if req.SKU != nil {
		sku, err := models.NewSKU(*req.SKU)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		patch.SKU = &sku
	}

	product, err := h.svc.Product.Update(r.Context(), userID, id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
