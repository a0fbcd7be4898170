package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/order/domain/models"
)

// OrderItemResponse is the wire representation of one order line.
type OrderItemResponse struct {
	ID        uuid.UUID `json:"id"        example:"7b1e1c2a-4f7d-4d3e-9d6a-6f2a1b3c4d5e"`
	ProductID uuid.UUID `json:"productId" example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int       `json:"quantity"  example:"3"`
	Price     float64   `json:"price"     example:"79.99"`
	Subtotal  float64   `json:"subtotal"  example:"239.97"`
} // @name OrderItemResponse

// OrderResponse is the wire representation of an order. Items is omitted on
// list responses, which carry aggregates only.
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Number       string              `json:"number"       example:"ORD-1704067200000"`
	CustomerName string              `json:"customerName" example:"Acme Corp"`
	Date         time.Time           `json:"date"         example:"2024-01-15T10:30:00Z"`
	Total        float64             `json:"total"        example:"239.97"`
	Status       string              `json:"status"       example:"Pending"`
	ItemsCount   int                 `json:"itemsCount"   example:"3"`
	Items        []OrderItemResponse `json:"items,omitempty"`
} // @name OrderResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order not found"`
} // @name ErrorResponse

func toOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		CustomerName: o.CustomerName,
		Date:         o.Date,
		Total:        o.Total,
		Status:       string(o.Status),
		ItemsCount:   o.ItemsCount,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}

func toOrderResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
