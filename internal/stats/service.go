package stats

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the stats service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service provides usage tracking for the admin console.
// Tracking is best-effort: a failed counter write is logged, never surfaced.
type Service struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a new stats service.
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

// TrackVisit counts at most one visit per device per calendar day.
func (s *Service) TrackVisit(ctx context.Context, deviceID string) {
	day := Today(s.now())

	first, err := s.repo.MarkVisited(ctx, deviceID, day)
	if err != nil {
		s.logger.Warn().Err(err).Str("device_id", deviceID).Msg("visit mark failed")
		return
	}
	if !first {
		return
	}

	if err := s.repo.IncrementVisits(ctx, day); err != nil {
		s.logger.Warn().Err(err).Str("day", day).Msg("visit count failed")
	}
}

// TrackGeneration counts one successful sermon generation.
func (s *Service) TrackGeneration(ctx context.Context) {
	day := Today(s.now())
	if err := s.repo.IncrementGenerations(ctx, day); err != nil {
		s.logger.Warn().Err(err).Str("day", day).Msg("generation count failed")
	}
}

// Daily returns all stat rows, newest day first.
func (s *Service) Daily(ctx context.Context) ([]*DailyStat, error) {
	return s.repo.List(ctx)
}
