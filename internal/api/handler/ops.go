// Package handler provides HTTP handlers for the Pregador API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
	"github.com/paptec/pregador/internal/provider/resilience"
)

// Pinger checks a dependency's liveness, typically the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	db        Pinger
	providers *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, db Pinger, providers *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		db:        db,
		providers: providers,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now().UnixMilli(),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now().UnixMilli(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			health.Status = models.HealthStatusDegraded
			health.Details = map[string]interface{}{"database": err.Error()}
			response.JSON(w, r, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"time": time.Now().UnixMilli(),
	}

	if h.providers != nil {
		providers := make(map[string]string)
		for _, ph := range h.providers.GetAllHealth() {
			switch {
			case ph.IsHealthy():
				providers[ph.Name] = "healthy"
			case ph.IsDegraded():
				providers[ph.Name] = "degraded"
			default:
				providers[ph.Name] = "unhealthy"
			}
		}
		status["providers"] = providers
	}

	response.JSON(w, r, http.StatusOK, status)
}
