package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/order/application/services"
)

// OrderItemRequest is one line of an order creation request.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int       `json:"quantity"  validate:"required,gte=1"   example:"3"`
	Price     float64   `json:"price"     validate:"gte=0,lte=1000000" example:"79.99"`
} // @name OrderItemRequest

// CreateOrderRequest is the request body for POST /orders. Total and
// itemsCount are accepted for orders created without line detail; when items
// are present the server derives both and ignores the submitted values.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" validate:"required,min=1,max=200" example:"Acme Corp"`
	Status       string             `json:"status"       validate:"required"               example:"Pending"`
	Items        []OrderItemRequest `json:"items"        validate:"omitempty,dive"`
	Total        float64            `json:"total"        validate:"gte=0"                  example:"239.97"`
	ItemsCount   int                `json:"itemsCount"   validate:"gte=0"                  example:"3"`
} // @name CreateOrderRequest

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a new order with its line items.
//
//	@Summary		Create order
//	@Description	Creates a new order for the authenticated user
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order creation request"
//	@Success		201		{object}	OrderResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.CreateOrderInput{
		CustomerName: req.CustomerName,
		Status:       req.Status,
		Total:        req.Total,
		ItemsCount:   req.ItemsCount,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, appsvcs.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.svc.Order.Create(r.Context(), userID, in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toOrderResponse(order))
}
