// Package main provides the entrypoint for the Pregador API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/access"
	"github.com/paptec/pregador/internal/api"
	"github.com/paptec/pregador/internal/api/middleware"
	"github.com/paptec/pregador/internal/apptheme"
	"github.com/paptec/pregador/internal/auth"
	"github.com/paptec/pregador/internal/database"
	"github.com/paptec/pregador/internal/device"
	"github.com/paptec/pregador/internal/entitlement"
	"github.com/paptec/pregador/internal/feedback"
	"github.com/paptec/pregador/internal/generation"
	"github.com/paptec/pregador/internal/generation/gemini"
	"github.com/paptec/pregador/internal/license"
	"github.com/paptec/pregador/internal/provider/resilience"
	"github.com/paptec/pregador/internal/sales"
	"github.com/paptec/pregador/internal/stats"
	"github.com/paptec/pregador/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "pregador-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Pregador API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Device identities
	deviceService := device.NewService(device.NewPostgresRepository(pool))
	log.Info().Msg("device service initialized")

	// Entitlement store
	entitlementService := entitlement.NewService(entitlement.ServiceConfig{
		Repository: entitlement.NewPostgresRepository(pool),
		Logger:     log,
	})

	// Activation codes
	licenseService := license.NewService(license.ServiceConfig{
		Entitlements: entitlementService,
		Logger:       log,
	})

	// Screen access sessions and the expiry watcher
	accessService := access.NewService(access.ServiceConfig{
		Entitlements: entitlementService,
		Logger:       log,
	})
	watcher := access.NewWatcher(access.WatcherConfig{
		Access: accessService,
		Logger: log,
	})

	// Usage analytics
	statsService := stats.NewService(stats.ServiceConfig{
		Repository: stats.NewPostgresRepository(pool),
		Logger:     log,
	})

	// Content generation via Gemini
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set - generation endpoints will fail")
	}
	providerMetrics, err := middleware.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}
	providers := resilience.NewRegistry()
	generationService := generation.NewService(generation.ServiceConfig{
		Provider: gemini.NewClient(gemini.Config{
			APIKey:   geminiAPIKey,
			Logger:   log,
			Metrics:  providerMetrics,
			Registry: providers,
		}),
		Tracker: statsService,
		Logger:  log,
	})
	log.Info().Msg("generation service initialized")

	// Sale ledger
	salesService := sales.NewService(sales.ServiceConfig{
		Repository: sales.NewPostgresRepository(pool),
		Logger:     log,
	})

	// Feedback inbox and client theme
	feedbackService := feedback.NewService(feedback.ServiceConfig{
		Repository: feedback.NewPostgresRepository(pool),
		Logger:     log,
	})
	themeService := apptheme.NewService(apptheme.ServiceConfig{
		Repository: apptheme.NewPostgresRepository(pool),
		Logger:     log,
	})

	// Admin console sessions
	adminSecret := os.Getenv("ADMIN_SECRET")
	if adminSecret == "" {
		adminSecret = "Papelao1988_Admin"
		log.Warn().Msg("using default admin secret - not secure for production")
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}
	sessionService := auth.NewSessionService(auth.SessionConfig{
		AdminSecret: adminSecret,
		SigningKey:  jwtSigningKey,
		Issuer:      "https://api.pregador.app",
		Audience:    "pregador-admin",
	})
	log.Info().Msg("admin session service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:            Version,
		BuildTime:          BuildTime,
		Logger:             log,
		ServiceName:        serviceName,
		Metrics:            metrics,
		DB:                 pool,
		Providers:          providers,
		DeviceService:      deviceService,
		EntitlementService: entitlementService,
		LicenseService:     licenseService,
		AccessService:      accessService,
		GenerationService:  generationService,
		SalesService:       salesService,
		StatsService:       statsService,
		FeedbackService:    feedbackService,
		ThemeService:       themeService,
		SessionService:     sessionService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // generation calls run long
		IdleTimeout:  60 * time.Second,
	}

	// Start the session watcher
	watcherCtx, stopWatcher := context.WithCancel(ctx)
	defer stopWatcher()
	go watcher.Run(watcherCtx)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stopWatcher()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
