package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/order/application/services"
	"github.com/stockflow/backend/services/order/domain/models"
)

// UpdateOrderRequest is the request body for PUT /orders/{id}. All fields are
// optional; omitted fields keep their stored values. Replacing items
// recomputes total and itemsCount on the server.
type UpdateOrderRequest struct {
	CustomerName *string            `json:"customerName" validate:"omitempty,min=1,max=200" example:"Acme Corp"`
	Status       *string            `json:"status"       validate:"omitempty"               example:"Shipped"`
	Total        *float64           `json:"total"        validate:"omitempty,gte=0"         example:"239.97"`
	ItemsCount   *int               `json:"itemsCount"   validate:"omitempty,gte=0"         example:"3"`
	Items        []OrderItemRequest `json:"items"        validate:"omitempty,dive"`
} // @name UpdateOrderRequest

// PutOrderHandler handles PUT /orders/{id} requests.
type PutOrderHandler struct {
	svc *appsvcs.Services
}

// NewPutOrderHandler returns a PutOrderHandler backed by the given services.
func NewPutOrderHandler(svc *appsvcs.Services) *PutOrderHandler {
	return &PutOrderHandler{svc: svc}
}

// Execute applies a partial update to an order.
//
//	@Summary		Update order
//	@Description	Applies a partial update to an order owned by the authenticated user
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order ID"
//	@Param			request	body		UpdateOrderRequest	true	"Fields to update"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders/{id} [put]
func (h *PutOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, errInvalidOrderID.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateOrderRequest](w, r)
	if !ok {
		return
	}

	patch := models.OrderPatch{
		CustomerName: req.CustomerName,
		Total:        req.Total,
		ItemsCount:   req.ItemsCount,
	}
	if req.Status != nil {
		status, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		patch.Status = &status
	}
	if req.Items != nil {
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, in := range req.Items {
			item, err := models.NewOrderItem(in.ProductID, in.Quantity, in.Price)
			if err != nil {
				httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			items = append(items, item)
		}
		patch.Items = items
	}

	order, err := h.svc.Order.Update(r.Context(), userID, id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
