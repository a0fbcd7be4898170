package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/account/domain/models"
)

// UserResponse is the wire representation of an account profile.
// The password hash is never serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"     example:"owner@stockflow.example"`
	Name      string    `json:"name"      example:"Jamie Doe"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
} // @name ErrorResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
