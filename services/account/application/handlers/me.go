package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/account/application/services"
)

// MeHandler handles GET /auth/me requests.
type MeHandler struct {
	svc *appsvcs.Services
}

// NewMeHandler returns a MeHandler backed by the given services.
func NewMeHandler(svc *appsvcs.Services) *MeHandler {
	return &MeHandler{svc: svc}
}

// Execute returns the authenticated user's profile.
//
//	@Summary		Current user
//	@Description	Returns the authenticated user's profile
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/me [get]
func (h *MeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.svc.Account.GetByID(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
