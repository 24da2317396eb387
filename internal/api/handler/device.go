package handler

import (
	"net/http"

	"github.com/paptec/pregador/internal/api/middleware"
	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
	"github.com/paptec/pregador/internal/device"
	"github.com/paptec/pregador/internal/stats"
)

// DeviceHandler handles installation identity endpoints.
type DeviceHandler struct {
	devices *device.Service
	stats   *stats.Service
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(devices *device.Service, statsService *stats.Service) *DeviceHandler {
	return &DeviceHandler{devices: devices, stats: statsService}
}

// Bootstrap handles POST /v1/device - resolve or provision an identity.
//
// The X-Device-Id header is optional here: a fresh install has no identity
// yet. Known identities are returned unchanged; unknown or absent ones get a
// new identity provisioned. A bootstrap also counts as a daily visit.
func (h *DeviceHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(middleware.DeviceIDHeader)

	identity, created, err := h.devices.GetOrCreate(r.Context(), id)
	if err != nil {
		response.InternalError(w, r, "could not resolve device identity")
		return
	}

	if h.stats != nil {
		h.stats.TrackVisit(r.Context(), identity.ID)
	}

	resp := models.DeviceResponse{
		DeviceID:  identity.ID,
		CreatedAt: identity.CreatedAt.UnixMilli(),
		Created:   created,
	}
	if created {
		response.Created(w, r, "/v1/device", resp)
		return
	}
	response.JSON(w, r, http.StatusOK, resp)
}
