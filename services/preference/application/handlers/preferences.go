package handlers

import (
	"net/http"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	pkgvalidator "github.com/stockflow/backend/pkg/validator"
	appsvcs "github.com/stockflow/backend/services/preference/application/services"
	"github.com/stockflow/backend/services/preference/domain/models"
)

// PreferencesResponse is the wire representation of user preferences.
type PreferencesResponse struct {
	DarkMode           bool   `json:"darkMode"           example:"false"`
	Currency           string `json:"currency"           example:"USD"`
	EmailNotifications bool   `json:"emailNotifications" example:"true"`
	PushNotifications  bool   `json:"pushNotifications"  example:"false"`
} // @name PreferencesResponse

// UpdatePreferencesRequest is the request body for PUT /preferences.
// All fields are optional; omitted fields keep their stored values.
type UpdatePreferencesRequest struct {
	DarkMode           *bool   `json:"darkMode"           example:"true"`
	Currency           *string `json:"currency"           validate:"omitempty,len=3" example:"EUR"`
	EmailNotifications *bool   `json:"emailNotifications" example:"false"`
	PushNotifications  *bool   `json:"pushNotifications"  example:"true"`
} // @name UpdatePreferencesRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"update contains no fields"`
} // @name ErrorResponse

func toPreferencesResponse(p *models.Preferences) PreferencesResponse {
	return PreferencesResponse{
		DarkMode:           p.DarkMode,
		Currency:           p.Currency,
		EmailNotifications: p.EmailNotifications,
		PushNotifications:  p.PushNotifications,
	}
}

// GetPreferencesHandler handles GET /preferences requests.
type GetPreferencesHandler struct {
	svc *appsvcs.Services
}

// NewGetPreferencesHandler returns a GetPreferencesHandler backed by the given services.
func NewGetPreferencesHandler(svc *appsvcs.Services) *GetPreferencesHandler {
	return &GetPreferencesHandler{svc: svc}
}

// Execute returns the user's preferences, creating defaults on first read.
//
//	@Summary		Get preferences
//	@Description	Returns the authenticated user's preferences, creating defaults on first read
//	@Tags			preferences
//	@Produce		json
//	@Success		200	{object}	PreferencesResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/preferences [get]
func (h *GetPreferencesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	prefs, err := h.svc.Preferences.Get(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toPreferencesResponse(prefs))
}

// PutPreferencesHandler handles PUT /preferences requests.
type PutPreferencesHandler struct {
	svc *appsvcs.Services
}

// NewPutPreferencesHandler returns a PutPreferencesHandler backed by the given services.
func NewPutPreferencesHandler(svc *appsvcs.Services) *PutPreferencesHandler {
	return &PutPreferencesHandler{svc: svc}
}

// Execute applies a partial update to the user's preferences.
//
//	@Summary		Update preferences
//	@Description	Applies a partial update to the authenticated user's preferences
//	@Tags			preferences
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdatePreferencesRequest	true	"Fields to update"
//	@Success		200		{object}	PreferencesResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/preferences [put]
func (h *PutPreferencesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdatePreferencesRequest](w, r)
	if !ok {
		return
	}

	prefs, err := h.svc.Preferences.Update(r.Context(), userID, models.PreferencesPatch{
		DarkMode:           req.DarkMode,
		Currency:           req.Currency,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toPreferencesResponse(prefs))
}
