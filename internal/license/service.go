package license

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const dayMillis = 24 * 60 * 60 * 1000

// Entitlements is the slice of the entitlement store the validator needs.
// premiumEndsAt is an absolute expiry in Unix milliseconds; 0 means lifetime.
type Entitlements interface {
	CommitActivation(ctx context.Context, deviceID string, premiumEndsAt int64, planName string) error
}

// ServiceConfig holds configuration for the activation service.
type ServiceConfig struct {
	Entitlements Entitlements
	Logger       zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service validates activation codes and commits activations.
type Service struct {
	entitlements Entitlements
	logger       zerolog.Logger
	now          func() time.Time
}

// NewService creates a new activation service.
func NewService(cfg ServiceConfig) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		entitlements: cfg.Entitlements,
		logger:       cfg.Logger,
		now:          now,
	}
}

// Activate validates a code against this installation's device identity and,
// on success, commits the activation.
//
// An invalid code returns (false, nil) with no state change; the caller owns
// the user-facing messaging. Errors are reserved for storage failures.
func (s *Service) Activate(ctx context.Context, deviceID, code, phoneNumber string) (bool, error) {
	normalized := Normalize(code)

	if IsUniversalCode(normalized) {
		if err := s.entitlements.CommitActivation(ctx, deviceID, 0, LifetimePlanName); err != nil {
			return false, err
		}
		s.logger.Info().
			Str("device_id", deviceID).
			Msg("universal code activated")
		return true, nil
	}

	days, providedHash, ok := ParseKey(normalized)
	if !ok {
		return false, nil
	}

	// The device identity is never carried in the code. Recomputing the hash
	// locally is what ties the key to this installation.
	expectedHash := DeriveChecksum(phoneNumber, deviceID)
	if expectedHash == "" || providedHash != expectedHash {
		return false, nil
	}

	expiresAt := s.now().UnixMilli() + int64(days)*dayMillis
	planName := PlanNameForDays(days)

	if err := s.entitlements.CommitActivation(ctx, deviceID, expiresAt, planName); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("device_id", deviceID).
		Str("plan", planName).
		Int("days", days).
		Msg("activation key redeemed")
	return true, nil
}
