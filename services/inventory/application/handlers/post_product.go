package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/inventory/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"      example:"Wireless Keyboard"`
	SKU      string  `json:"sku"      validate:"required,min=3,max=50"       example:"SKU-1042"`
	Category string  `json:"category" validate:"required"                    example:"Electronics"`
	Quantity int     `json:"quantity" validate:"gte=0,lte=100000"            example:"42"`
	MinLevel int     `json:"minLevel" validate:"gte=0"                       example:"10"`
	Price    float64 `json:"price"    validate:"gte=0,lte=1000000"           example:"79.99"`
	Cost     float64 `json:"cost"     validate:"omitempty,gte=0,lte=1000000" example:"47.99"`
	Supplier string  `json:"supplier" validate:"required"                    example:"TechGlobal Inc"`
} // @name CreateProductRequest

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product.
//
//	@Summary		Create product
//	@Description	Creates a new product in the authenticated user's inventory
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Create(r.Context(), userID, appsvcs.CreateProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Quantity: req.Quantity,
		MinLevel: req.MinLevel,
		Price:    req.Price,
		Cost:     req.Cost,
		Supplier: req.Supplier,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProductResponse(product))
}
