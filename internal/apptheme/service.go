package apptheme

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidTheme is returned when a theme fails validation.
var ErrInvalidTheme = errors.New("invalid theme")

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Scale limits keep a mistyped admin value from rendering the app unusable.
const (
	minFontScale = 0.5
	maxFontScale = 2.0
)

// ServiceConfig holds configuration for the theme service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger
}

// Service provides theme operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService creates a new theme service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}
}

// Get returns the current theme.
func (s *Service) Get(ctx context.Context) (Theme, error) {
	return s.repo.Get(ctx)
}

// Update validates and stores a new theme, returning the stored value.
func (s *Service) Update(ctx context.Context, theme Theme) (Theme, error) {
	if !hexColorPattern.MatchString(theme.PrimaryColor) {
		return Theme{}, ErrInvalidTheme
	}
	if strings.TrimSpace(theme.FontFamily) == "" {
		return Theme{}, ErrInvalidTheme
	}
	if theme.FontSizeScale < minFontScale || theme.FontSizeScale > maxFontScale {
		return Theme{}, ErrInvalidTheme
	}

	if err := s.repo.Set(ctx, theme); err != nil {
		return Theme{}, err
	}

	s.logger.Info().
		Str("primary_color", theme.PrimaryColor).
		Str("font_family", theme.FontFamily).
		Float64("font_scale", theme.FontSizeScale).
		Msg("theme updated")
	return theme, nil
}

// Reset restores the default theme.
func (s *Service) Reset(ctx context.Context) (Theme, error) {
	theme := DefaultTheme()
	if err := s.repo.Set(ctx, theme); err != nil {
		return Theme{}, err
	}
	s.logger.Info().Msg("theme reset to default")
	return theme, nil
}
