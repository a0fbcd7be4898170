package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/customer/domain/models"
)

// CustomerResponse is the wire representation of a customer.
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"      example:"Acme Corp"`
	Email     *string   `json:"email"     example:"orders@acme.example"`
	Phone     *string   `json:"phone"     example:"+1-555-0100"`
	Address   *string   `json:"address"   example:"42 Warehouse Rd"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name CustomerResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"customer not found"`
} // @name ErrorResponse

func toCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func toCustomerResponses(customers []*models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = toCustomerResponse(c)
	}
	return out
}
