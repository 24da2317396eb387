package entitlement

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the entitlement service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service provides entitlement state operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a new entitlement service.
func NewService(cfg ServiceConfig) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
		now:    now,
	}
}

// GetState returns the effective entitlement for a device.
//
// The first-ever read initializes the record with a fresh trial window and
// persists it before returning; the trial end never moves on later reads.
func (s *Service) GetState(ctx context.Context, deviceID string) (State, error) {
	nowMillis := s.now().UnixMilli()

	rec, err := s.repo.Get(ctx, deviceID)
	if err == nil {
		return effectiveState(rec, nowMillis), nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return State{}, err
	}

	rec = &Record{
		DeviceID:      deviceID,
		IsPremium:     false,
		TrialEndsAt:   nowMillis + TrialDurationMillis,
		PremiumEndsAt: 0,
		IsTrialActive: true,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return State{}, err
	}

	s.logger.Info().
		Str("device_id", deviceID).
		Int64("trial_ends_at", rec.TrialEndsAt).
		Msg("trial window opened")

	return effectiveState(rec, nowMillis), nil
}

// CommitActivation marks a device premium until premiumEndsAt (0 = lifetime).
// Fields not owned by the activation, notably the trial window, are preserved.
func (s *Service) CommitActivation(ctx context.Context, deviceID string, premiumEndsAt int64, planName string) error {
	rec, err := s.getOrEmpty(ctx, deviceID)
	if err != nil {
		return err
	}

	rec.IsPremium = true
	rec.PremiumEndsAt = premiumEndsAt
	rec.IsTrialActive = false
	rec.PlanName = planName

	return s.repo.Save(ctx, rec)
}

// Revoke clears premium access. The trial window is left untouched: revoking
// premium does not resurrect a trial whose window has already elapsed.
func (s *Service) Revoke(ctx context.Context, deviceID string) error {
	rec, err := s.getOrEmpty(ctx, deviceID)
	if err != nil {
		return err
	}

	rec.IsPremium = false
	rec.PremiumEndsAt = 0
	rec.IsTrialActive = false
	rec.PlanName = ""

	if err := s.repo.Save(ctx, rec); err != nil {
		return err
	}

	s.logger.Info().Str("device_id", deviceID).Msg("premium revoked")
	return nil
}

// List returns every persisted record, for the administrative overview.
func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.repo.List(ctx)
}

// DaysRemaining reports whole days until an expiry instant (Unix millis).
// A zero expiry means lifetime and reports the sentinel value, never zero.
func (s *Service) DaysRemaining(expiresAt int64) int {
	if expiresAt == 0 {
		return UnlimitedDaysSentinel
	}

	diff := expiresAt - s.now().UnixMilli()
	if diff <= 0 {
		return 0
	}
	return int((diff + dayMillis - 1) / dayMillis)
}

// MinutesRemaining reports whole minutes until an expiry instant (Unix millis),
// floored at zero. Used for the trial countdown.
func (s *Service) MinutesRemaining(expiresAt int64) int {
	diff := expiresAt - s.now().UnixMilli()
	if diff <= 0 {
		return 0
	}
	return int((diff + minuteMillis - 1) / minuteMillis)
}

// getOrEmpty loads the record for a device, or starts an empty one so that
// activation and revocation merge over whatever is already persisted.
func (s *Service) getOrEmpty(ctx context.Context, deviceID string) (*Record, error) {
	rec, err := s.repo.Get(ctx, deviceID)
	if err == nil {
		return rec, nil
	}
	if errors.Is(err, ErrRecordNotFound) {
		return &Record{DeviceID: deviceID}, nil
	}
	return nil, err
}
