// Package worker provides background job processing for Pregador.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/entitlement"
)

// dayMillis is one day in Unix milliseconds.
const dayMillis = 24 * 60 * 60 * 1000

// endingSoonDays is the window for the expiring-soon count.
const endingSoonDays = 3

// SweepResult summarizes one pass over the entitlement records.
type SweepResult struct {
	Total        int
	Lifetime     int
	ActiveTerms  int
	ExpiringSoon int
	ExpiredTerms int
	ActiveTrials int
	Duration     time.Duration
}

// SweepJob audits persisted entitlement records. Entitlement expiry is
// evaluated lazily on read, so the sweep never mutates records; it exists to
// surface the subscription funnel in the logs and to flag keys about to end.
type SweepJob struct {
	records entitlement.Repository
	logger  zerolog.Logger
	now     func() time.Time
}

// SweepJobConfig holds configuration for creating a SweepJob.
type SweepJobConfig struct {
	Records entitlement.Repository
	Logger  zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewSweepJob creates a new sweep job processor.
func NewSweepJob(cfg SweepJobConfig) *SweepJob {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &SweepJob{
		records: cfg.Records,
		logger:  cfg.Logger,
		now:     now,
	}
}

// Run executes one sweep over all records.
func (j *SweepJob) Run(ctx context.Context) (SweepResult, error) {
	start := j.now()
	nowMillis := start.UnixMilli()

	records, err := j.records.List(ctx)
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Total: len(records)}

	for _, rec := range records {
		switch {
		case rec.IsPremium && rec.PremiumEndsAt == 0:
			result.Lifetime++
		case rec.IsPremium && rec.PremiumEndsAt > nowMillis:
			result.ActiveTerms++
			if rec.PremiumEndsAt-nowMillis <= endingSoonDays*dayMillis {
				result.ExpiringSoon++
				j.logger.Info().
					Str("device_id", rec.DeviceID).
					Str("plan", rec.PlanName).
					Int64("premium_ends_at", rec.PremiumEndsAt).
					Msg("subscription ending soon")
			}
		case rec.IsPremium:
			result.ExpiredTerms++
		case nowMillis < rec.TrialEndsAt:
			result.ActiveTrials++
		}
	}

	result.Duration = time.Since(start)

	j.logger.Info().
		Int("total", result.Total).
		Int("lifetime", result.Lifetime).
		Int("active_terms", result.ActiveTerms).
		Int("expiring_soon", result.ExpiringSoon).
		Int("expired_terms", result.ExpiredTerms).
		Int("active_trials", result.ActiveTrials).
		Dur("duration", result.Duration).
		Msg("entitlement sweep completed")

	return result, nil
}
