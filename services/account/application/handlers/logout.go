package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
)

// LogoutHandler handles POST /auth/logout requests.
type LogoutHandler struct {
	store sessions.Store
}

// NewLogoutHandler returns a LogoutHandler using the given session store.
func NewLogoutHandler(store sessions.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

// Execute ends the current session. Idempotent: logging out without a
// session still returns 204.
//
//	@Summary		Logout
//	@Description	Ends the current session and expires the cookie
//	@Tags			auth
//	@Success		204
//	@Router			/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r, h.store); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
