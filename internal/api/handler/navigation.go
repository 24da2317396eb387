package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paptec/pregador/internal/access"
	"github.com/paptec/pregador/internal/api/middleware"
	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
)

// NavigationHandler handles screen navigation endpoints.
type NavigationHandler struct {
	access *access.Service
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(accessService *access.Service) *NavigationHandler {
	return &NavigationHandler{access: accessService}
}

// Current handles GET /v1/navigation - where the session is now. The check
// also pushes lapsed sessions off gated screens.
func (h *NavigationHandler) Current(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	screen, err := h.access.CheckCurrent(r.Context(), deviceID)
	if err != nil {
		response.InternalError(w, r, "could not evaluate session")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NavigationResponse{Screen: string(screen)})
}

// Navigate handles POST /v1/navigation - move the session to a screen.
func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	var input models.NavigationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	landed, decision, err := h.access.Navigate(r.Context(), deviceID, access.Screen(input.Screen))
	if err != nil {
		if errors.Is(err, access.ErrUnknownScreen) {
			response.BadRequest(w, r, "unknown screen", []models.FieldError{
				{Field: "screen", Message: "not a valid screen", Code: "invalid"},
			})
			return
		}
		response.InternalError(w, r, "could not evaluate navigation")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NavigationResponse{
		Screen:     string(landed),
		Redirected: !decision.Allowed,
	})
}

// Back handles POST /v1/navigation/back - move to the parent screen.
func (h *NavigationHandler) Back(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	landed, err := h.access.Back(r.Context(), deviceID)
	if err != nil {
		response.InternalError(w, r, "could not evaluate navigation")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NavigationResponse{Screen: string(landed)})
}
