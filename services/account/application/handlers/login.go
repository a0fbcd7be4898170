package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/account/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"owner@stockflow.example"`
	Password string `json:"password" validate:"required"       example:"correct horse battery"`
} // @name LoginRequest

// LoginHandler handles POST /auth/login requests.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewLoginHandler returns a LoginHandler backed by the given services.
func NewLoginHandler(svc *appsvcs.Services, store sessions.Store) *LoginHandler {
	return &LoginHandler{svc: svc, store: store}
}

// Execute verifies credentials and starts a session.
//
//	@Summary		Login
//	@Description	Verifies email and password and starts a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	UserResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.SignIn(w, r, h.store, user.ID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
