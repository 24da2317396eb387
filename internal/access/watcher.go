package access

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultWatchInterval is how often sessions are re-checked against the
// entitlement state.
const DefaultWatchInterval = 10 * time.Second

// WatcherConfig holds configuration for the session watcher.
type WatcherConfig struct {
	Access   *Service
	Logger   zerolog.Logger
	Interval time.Duration
}

// Watcher periodically re-evaluates every active session so a device whose
// trial or subscription expires mid-session gets pushed to the paywall
// without waiting for its next navigation.
type Watcher struct {
	access   *Service
	logger   zerolog.Logger
	interval time.Duration
}

// NewWatcher creates a new session watcher.
func NewWatcher(cfg WatcherConfig) *Watcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{
		access:   cfg.Access,
		logger:   cfg.Logger,
		interval: interval,
	}
}

// Run blocks, sweeping sessions until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session watcher started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session watcher stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one pass over the active sessions. Devices already on open
// screens are skipped; per-device errors are logged and do not stop the pass.
func (w *Watcher) Sweep(ctx context.Context) {
	forced := 0
	for deviceID, screen := range w.access.ActiveSessions() {
		if !Gated(screen) {
			continue
		}

		landed, err := w.access.CheckCurrent(ctx, deviceID)
		if err != nil {
			w.logger.Warn().Err(err).Str("device_id", deviceID).Msg("session check failed")
			continue
		}
		if landed != screen {
			forced++
		}
	}

	if forced > 0 {
		w.logger.Info().Int("forced", forced).Msg("sessions moved to paywall")
	}
}
