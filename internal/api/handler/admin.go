package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
	"github.com/paptec/pregador/internal/apptheme"
	"github.com/paptec/pregador/internal/auth"
	"github.com/paptec/pregador/internal/entitlement"
	"github.com/paptec/pregador/internal/feedback"
	"github.com/paptec/pregador/internal/license"
	"github.com/paptec/pregador/internal/sales"
	"github.com/paptec/pregador/internal/stats"
)

// AdminHandler handles the administrative console endpoints. Everything here
// except Login sits behind the admin session middleware.
type AdminHandler struct {
	sessions     *auth.SessionService
	entitlements *entitlement.Service
	ledger       *sales.Service
	stats        *stats.Service
	feedback     *feedback.Service
	themes       *apptheme.Service
	now          func() time.Time
}

// AdminHandlerConfig holds the services the console operates on.
type AdminHandlerConfig struct {
	Sessions     *auth.SessionService
	Entitlements *entitlement.Service
	Ledger       *sales.Service
	Stats        *stats.Service
	Feedback     *feedback.Service
	Themes       *apptheme.Service

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cfg AdminHandlerConfig) *AdminHandler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &AdminHandler{
		sessions:     cfg.Sessions,
		entitlements: cfg.Entitlements,
		ledger:       cfg.Ledger,
		stats:        cfg.Stats,
		feedback:     cfg.Feedback,
		themes:       cfg.Themes,
		now:          now,
	}
}

// Login handles POST /v1/admin/session - open a console session.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	token, expiresAt, err := h.sessions.Login(input.Secret)
	if err != nil {
		response.Unauthorized(w, r, "invalid admin secret")
		return
	}

	response.JSON(w, r, http.StatusOK, models.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
	})
}

// GenerateKey handles POST /v1/admin/keys - mint an access key and record
// the sale.
func (h *AdminHandler) GenerateKey(w http.ResponseWriter, r *http.Request) {
	var input models.KeyGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var fieldErrors []models.FieldError
	if input.PhoneNumber == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "phoneNumber", Message: "must not be empty", Code: "required"})
	}
	if input.DeviceID == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "deviceId", Message: "must not be empty", Code: "required"})
	}
	if input.Days <= 0 {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "days", Message: "must be positive", Code: "invalid"})
	}
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid key request", fieldErrors)
		return
	}

	key := license.GenerateKey(input.PhoneNumber, input.DeviceID, input.Days)

	sale, err := h.ledger.Record(r.Context(), input.PhoneNumber, input.DeviceID, input.Days, key)
	if err != nil {
		response.InternalError(w, r, "could not record the sale")
		return
	}

	response.Created(w, r, "/v1/admin/sales/"+sale.ID, models.KeyGenerationResponse{
		Key:      key,
		PlanName: sale.PlanName,
		Price:    sale.Price,
		Sale:     sale,
	})
}

// ListSales handles GET /v1/admin/sales - the ledger with expiry labels.
func (h *AdminHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	all, err := h.ledger.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not read the ledger")
		return
	}

	now := h.now()
	out := make([]models.SaleExpiryResponse, 0, len(all))
	for _, sale := range all {
		status := sales.ExpirationStatus(sale, now)
		out = append(out, models.SaleExpiryResponse{
			Sale:   sale,
			Label:  status.Label,
			Active: status.Active,
		})
	}

	response.JSON(w, r, http.StatusOK, out)
}

// SalesStats handles GET /v1/admin/sales/stats - revenue aggregation.
func (h *AdminHandler) SalesStats(w http.ResponseWriter, r *http.Request) {
	agg, err := h.ledger.Stats(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not aggregate the ledger")
		return
	}
	response.JSON(w, r, http.StatusOK, agg)
}

// Analytics handles GET /v1/admin/analytics - daily visits and generations.
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	daily, err := h.stats.Daily(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not read analytics")
		return
	}
	response.JSON(w, r, http.StatusOK, daily)
}

// ListDevices handles GET /v1/admin/devices - every entitlement record.
func (h *AdminHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	records, err := h.entitlements.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not read entitlement records")
		return
	}
	response.JSON(w, r, http.StatusOK, records)
}

// ActivateDevice handles POST /v1/admin/devices/{deviceId}/activate - grant
// premium without a key.
func (h *AdminHandler) ActivateDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceId")
	if deviceID == "" {
		response.BadRequest(w, r, "deviceId is required", nil)
		return
	}

	var input models.AdminActivationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var premiumEndsAt int64
	planName := license.LifetimePlanName
	if !input.Lifetime {
		if input.Days <= 0 {
			response.BadRequest(w, r, "days must be positive unless lifetime is set", []models.FieldError{
				{Field: "days", Message: "must be positive", Code: "invalid"},
			})
			return
		}
		premiumEndsAt = h.now().UnixMilli() + int64(input.Days)*24*60*60*1000
		planName = license.PlanNameForDays(input.Days)
	}

	if err := h.entitlements.CommitActivation(r.Context(), deviceID, premiumEndsAt, planName); err != nil {
		response.InternalError(w, r, "could not activate device")
		return
	}

	response.NoContent(w, r)
}

// RevokeDevice handles POST /v1/admin/devices/{deviceId}/revoke.
func (h *AdminHandler) RevokeDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceId")
	if deviceID == "" {
		response.BadRequest(w, r, "deviceId is required", nil)
		return
	}

	if err := h.entitlements.Revoke(r.Context(), deviceID); err != nil {
		response.InternalError(w, r, "could not revoke device")
		return
	}

	response.NoContent(w, r)
}

// ListFeedback handles GET /v1/admin/feedback - the inbox, newest first.
func (h *AdminHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	all, err := h.feedback.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not read feedback")
		return
	}
	response.JSON(w, r, http.StatusOK, all)
}

// MarkFeedbackRead handles POST /v1/admin/feedback/{messageId}/read.
func (h *AdminHandler) MarkFeedbackRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "messageId")

	if err := h.feedback.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, feedback.ErrMessageNotFound) {
			response.NotFound(w, r, "feedback message not found")
			return
		}
		response.InternalError(w, r, "could not update feedback")
		return
	}

	response.NoContent(w, r)
}

// DeleteFeedback handles DELETE /v1/admin/feedback/{messageId}.
func (h *AdminHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "messageId")

	if err := h.feedback.Delete(r.Context(), id); err != nil {
		if errors.Is(err, feedback.ErrMessageNotFound) {
			response.NotFound(w, r, "feedback message not found")
			return
		}
		response.InternalError(w, r, "could not delete feedback")
		return
	}

	response.NoContent(w, r)
}

// UpdateTheme handles PUT /v1/admin/theme - customize the client look.
func (h *AdminHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var input apptheme.Theme
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	theme, err := h.themes.Update(r.Context(), input)
	if err != nil {
		if errors.Is(err, apptheme.ErrInvalidTheme) {
			response.BadRequest(w, r, "invalid theme", nil)
			return
		}
		response.InternalError(w, r, "could not store theme")
		return
	}

	response.JSON(w, r, http.StatusOK, theme)
}

// ResetTheme handles DELETE /v1/admin/theme - restore the default look.
func (h *AdminHandler) ResetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themes.Reset(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not reset theme")
		return
	}
	response.JSON(w, r, http.StatusOK, theme)
}
