package generation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Validation errors for generation requests.
var (
	ErrEmptyTopic      = errors.New("sermon topic is empty")
	ErrInvalidAudience = errors.New("unknown sermon audience")
	ErrInvalidTone     = errors.New("unknown sermon tone")
	ErrEmptyCategory   = errors.New("theme category is empty")
	ErrEmptyReference  = errors.New("bible reference is empty")
	ErrEmptyQuery      = errors.New("dictionary query is empty")
	ErrEmptyProgram    = errors.New("service type is empty")
)

// Tracker counts successful generations for the daily analytics.
type Tracker interface {
	TrackGeneration(ctx context.Context)
}

// ServiceConfig holds configuration for the generation service.
type ServiceConfig struct {
	Provider Provider
	Tracker  Tracker
	Logger   zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service validates generation requests, delegates to the provider, and
// stamps the results.
type Service struct {
	provider Provider
	tracker  Tracker
	logger   zerolog.Logger
	now      func() time.Time
}

// NewService creates a new generation service.
func NewService(cfg ServiceConfig) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		provider: cfg.Provider,
		tracker:  cfg.Tracker,
		logger:   cfg.Logger,
		now:      now,
	}
}

// GenerateSermon produces a full preaching outline and counts it in the
// daily analytics.
func (s *Service) GenerateSermon(ctx context.Context, req SermonRequest) (*Sermon, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrEmptyTopic
	}
	if !ValidAudience(req.Audience) {
		return nil, ErrInvalidAudience
	}
	if !ValidTone(req.Tone) {
		return nil, ErrInvalidTone
	}

	sermon, err := s.provider.GenerateSermon(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("topic", req.Topic).Msg("sermon generation failed")
		return nil, err
	}

	now := s.now()
	sermon.ID = strconv.FormatInt(now.UnixMilli(), 10)
	sermon.Theme = req.Topic
	sermon.CreatedAt = now.UnixMilli()

	if s.tracker != nil {
		s.tracker.TrackGeneration(ctx)
	}

	s.logger.Info().
		Str("sermon_id", sermon.ID).
		Str("audience", req.Audience).
		Str("tone", req.Tone).
		Msg("sermon generated")
	return sermon, nil
}

// SuggestThemes produces preaching theme ideas.
func (s *Service) SuggestThemes(ctx context.Context, category string) ([]SuggestedTheme, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	return s.provider.SuggestThemes(ctx, category)
}

// GenerateDevotional produces a daily reading guide. The reference is
// optional.
func (s *Service) GenerateDevotional(ctx context.Context, reference string) (*Devotional, error) {
	devotional, err := s.provider.GenerateDevotional(ctx, strings.TrimSpace(reference))
	if err != nil {
		return nil, err
	}
	devotional.Date = s.now().Format("02/01/2006")
	return devotional, nil
}

// GenerateServiceProgram produces a service liturgy.
func (s *Service) GenerateServiceProgram(ctx context.Context, req ProgramRequest) (*ServiceProgram, error) {
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	if req.ServiceType == "" {
		return nil, ErrEmptyProgram
	}
	return s.provider.GenerateServiceProgram(ctx, req)
}

// GetPassage retrieves the text of a Bible reference.
func (s *Service) GetPassage(ctx context.Context, reference string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", ErrEmptyReference
	}
	return s.provider.GetPassage(ctx, reference)
}

// LookupTerm explains a biblical or theological term.
func (s *Service) LookupTerm(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	return s.provider.LookupTerm(ctx, query)
}
