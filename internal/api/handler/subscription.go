package handler

import (
	"encoding/json"
	"net/http"

	"github.com/paptec/pregador/internal/api/middleware"
	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
	"github.com/paptec/pregador/internal/entitlement"
	"github.com/paptec/pregador/internal/license"
)

// SubscriptionHandler handles entitlement and activation endpoints.
type SubscriptionHandler struct {
	entitlements *entitlement.Service
	licenses     *license.Service
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(entitlements *entitlement.Service, licenses *license.Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		entitlements: entitlements,
		licenses:     licenses,
	}
}

// subscriptionStatus renders an entitlement state for the client.
func subscriptionStatus(svc *entitlement.Service, state entitlement.State) *models.SubscriptionStatus {
	status := &models.SubscriptionStatus{
		IsPremium:     state.Premium,
		IsTrialActive: state.TrialActive,
		TrialEndsAt:   state.TrialEndsAt,
		PremiumEndsAt: state.PremiumEndsAt,
		PlanName:      state.PlanName,
		CanAccess:     state.Allowed(),
	}
	if state.Premium {
		status.DaysRemaining = svc.DaysRemaining(state.PremiumEndsAt)
	} else if state.TrialActive {
		status.TrialMinutesRemaining = svc.MinutesRemaining(state.TrialEndsAt)
	}
	return status
}

// Status handles GET /v1/subscription - current entitlement readout.
// The first call for a new device opens its trial window.
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	state, err := h.entitlements.GetState(r.Context(), deviceID)
	if err != nil {
		response.InternalError(w, r, "could not read subscription state")
		return
	}

	response.JSON(w, r, http.StatusOK, subscriptionStatus(h.entitlements, state))
}

// Activate handles POST /v1/subscription/activate - redeem an access code.
func (h *SubscriptionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	var input models.ActivationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if input.Code == "" {
		response.BadRequest(w, r, "code is required", []models.FieldError{
			{Field: "code", Message: "must not be empty", Code: "required"},
		})
		return
	}

	activated, err := h.licenses.Activate(r.Context(), deviceID, input.Code, input.PhoneNumber)
	if err != nil {
		response.InternalError(w, r, "could not process activation")
		return
	}

	if !activated {
		response.JSON(w, r, http.StatusOK, models.ActivationResponse{Activated: false})
		return
	}

	state, err := h.entitlements.GetState(r.Context(), deviceID)
	if err != nil {
		response.InternalError(w, r, "could not read subscription state")
		return
	}

	response.JSON(w, r, http.StatusOK, models.ActivationResponse{
		Activated: true,
		Status:    subscriptionStatus(h.entitlements, state),
	})
}
