// Package api provides the HTTP API for Pregador.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/access"
	"github.com/paptec/pregador/internal/api/handler"
	"github.com/paptec/pregador/internal/api/middleware"
	"github.com/paptec/pregador/internal/apptheme"
	"github.com/paptec/pregador/internal/auth"
	"github.com/paptec/pregador/internal/device"
	"github.com/paptec/pregador/internal/entitlement"
	"github.com/paptec/pregador/internal/feedback"
	"github.com/paptec/pregador/internal/generation"
	"github.com/paptec/pregador/internal/license"
	"github.com/paptec/pregador/internal/provider/resilience"
	"github.com/paptec/pregador/internal/sales"
	"github.com/paptec/pregador/internal/stats"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	DB        handler.Pinger
	Providers *resilience.Registry

	DeviceService      *device.Service
	EntitlementService *entitlement.Service
	LicenseService     *license.Service
	AccessService      *access.Service
	GenerationService  *generation.Service
	SalesService       *sales.Service
	StatsService       *stats.Service
	FeedbackService    *feedback.Service
	ThemeService       *apptheme.Service
	SessionService     *auth.SessionService
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "pregador-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB, cfg.Providers)
	deviceHandler := handler.NewDeviceHandler(cfg.DeviceService, cfg.StatsService)
	subscriptionHandler := handler.NewSubscriptionHandler(cfg.EntitlementService, cfg.LicenseService)
	navigationHandler := handler.NewNavigationHandler(cfg.AccessService)
	generationHandler := handler.NewGenerationHandler(cfg.GenerationService)
	feedbackHandler := handler.NewFeedbackHandler(cfg.FeedbackService, cfg.ThemeService)
	adminHandler := handler.NewAdminHandler(handler.AdminHandlerConfig{
		Sessions:     cfg.SessionService,
		Entitlements: cfg.EntitlementService,
		Ledger:       cfg.SalesService,
		Stats:        cfg.StatsService,
		Feedback:     cfg.FeedbackService,
		Themes:       cfg.ThemeService,
	})

	// Access control middleware
	deviceID := middleware.DeviceID()
	requireEntitlement := middleware.RequireEntitlement(cfg.EntitlementService)
	adminAuth := middleware.AdminAuth(cfg.SessionService)

	// Rate limit tiers
	strictRateLimit := middleware.RateLimitByIP(middleware.AuthRateLimit)              // 10 req/min
	expensiveRateLimit := middleware.RateLimitByDevice(middleware.ExpensiveRateLimit)  // 30 req/min
	standardRateLimit := middleware.RateLimitByDevice(middleware.StandardRateLimit)    // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			// Status endpoint requires an admin session
			r.With(adminAuth).Get("/status", opsHandler.SystemStatus)
		})

		// Device bootstrap (public, identity header optional here)
		r.With(standardRateLimit).Post("/device", deviceHandler.Bootstrap)

		// Client endpoints, all keyed by device identity
		r.Group(func(r chi.Router) {
			r.Use(deviceID)
			r.Use(standardRateLimit)

			r.Route("/subscription", func(r chi.Router) {
				r.Get("/", subscriptionHandler.Status)
				// Activation attempts are strictly limited
				r.With(strictRateLimit).Post("/activate", subscriptionHandler.Activate)
			})

			r.Route("/navigation", func(r chi.Router) {
				r.Get("/", navigationHandler.Current)
				r.Post("/", navigationHandler.Navigate)
				r.Post("/back", navigationHandler.Back)
			})

			// Generation requires an active trial or subscription, checked
			// fresh on every call
			r.Route("/generate", func(r chi.Router) {
				r.Use(requireEntitlement)
				r.Use(expensiveRateLimit)
				r.Post("/sermon", generationHandler.GenerateSermon)
				r.Post("/themes", generationHandler.SuggestThemes)
				r.Post("/devotional", generationHandler.GenerateDevotional)
				r.Post("/program", generationHandler.GenerateServiceProgram)
				r.Post("/passage", generationHandler.GetPassage)
				r.Post("/dictionary", generationHandler.LookupTerm)
			})

			r.Post("/feedback", feedbackHandler.Send)
			r.Get("/theme", feedbackHandler.Theme)
		})

		// Admin console
		r.Route("/admin", func(r chi.Router) {
			// Session opening is strictly limited
			r.With(strictRateLimit).Post("/session", adminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(adminAuth)

				r.Post("/keys", adminHandler.GenerateKey)

				r.Route("/sales", func(r chi.Router) {
					r.Get("/", adminHandler.ListSales)
					r.Get("/stats", adminHandler.SalesStats)
				})

				r.Get("/analytics", adminHandler.Analytics)

				r.Route("/devices", func(r chi.Router) {
					r.Get("/", adminHandler.ListDevices)
					r.Route("/{deviceId}", func(r chi.Router) {
						r.Post("/activate", adminHandler.ActivateDevice)
						r.Post("/revoke", adminHandler.RevokeDevice)
					})
				})

				r.Route("/feedback", func(r chi.Router) {
					r.Get("/", adminHandler.ListFeedback)
					r.Route("/{messageId}", func(r chi.Router) {
						r.Post("/read", adminHandler.MarkFeedbackRead)
						r.Delete("/", adminHandler.DeleteFeedback)
					})
				})

				r.Route("/theme", func(r chi.Router) {
					r.Put("/", adminHandler.UpdateTheme)
					r.Delete("/", adminHandler.ResetTheme)
				})
			})
		})
	})

	return r
}
