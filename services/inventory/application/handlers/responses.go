package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/inventory/domain/models"
)

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Wireless Keyboard"`
	SKU         string    `json:"sku"         example:"SKU-1042"`
	Category    string    `json:"category"    example:"Electronics"`
	Quantity    int       `json:"quantity"    example:"42"`
	MinLevel    int       `json:"minLevel"    example:"10"`
	Price       float64   `json:"price"       example:"79.99"`
	Cost        float64   `json:"cost"        example:"47.99"`
	Status      string    `json:"status"      example:"In Stock"`
	Supplier    string    `json:"supplier"    example:"TechGlobal Inc"`
	LastUpdated time.Time `json:"lastUpdated" example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU.String(),
		Category:    p.Category,
		Quantity:    p.Quantity,
		MinLevel:    p.MinLevel,
		Price:       p.Price,
		Cost:        p.Cost,
		Status:      string(p.Status),
		Supplier:    p.Supplier,
		LastUpdated: p.UpdatedAt,
	}
}

func toProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
