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

// RegisterRequest is the request body for POST /auth/register. Name is
// optional; when empty the mailbox part of the email is used.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"       example:"owner@stockflow.example"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"correct horse battery"`
	Name     string `json:"name"     validate:"omitempty,max=200"     example:"Jamie Doe"`
} // @name RegisterRequest

// RegisterHandler handles POST /auth/register requests.
type RegisterHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services, store sessions.Store) *RegisterHandler {
	return &RegisterHandler{svc: svc, store: store}
}

// Execute registers a new account and signs the user in.
//
//	@Summary		Register
//	@Description	Creates a new account and starts a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	UserResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.SignIn(w, r, h.store, user.ID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toUserResponse(user))
}
