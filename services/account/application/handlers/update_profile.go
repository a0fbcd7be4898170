package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/account/application/services"
)

// UpdateProfileRequest is the request body for PUT /auth/me.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"Jamie Doe"`
} // @name UpdateProfileRequest

// UpdateProfileHandler handles PUT /auth/me requests.
type UpdateProfileHandler struct {
	svc *appsvcs.Services
}

// NewUpdateProfileHandler returns an UpdateProfileHandler backed by the given services.
func NewUpdateProfileHandler(svc *appsvcs.Services) *UpdateProfileHandler {
	return &UpdateProfileHandler{svc: svc}
}

// Execute updates the authenticated user's display name.
//
//	@Summary		Update profile
//	@Description	Updates the authenticated user's display name
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Profile update request"
//	@Success		200		{object}	UserResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/me [put]
func (h *UpdateProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
