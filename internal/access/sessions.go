package access

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/entitlement"
)

// ErrUnknownScreen is returned when a navigation target does not exist.
var ErrUnknownScreen = errors.New("unknown screen")

// Entitlements is the slice of the entitlement service the access layer needs.
type Entitlements interface {
	GetState(ctx context.Context, deviceID string) (entitlement.State, error)
}

// ServiceConfig holds configuration for the access service.
type ServiceConfig struct {
	Entitlements Entitlements
	Logger       zerolog.Logger
}

// Service tracks where each device currently is and applies the screen
// policy on every move. Sessions are in-memory only; a restart simply lands
// every device back on home.
type Service struct {
	entitlements Entitlements
	logger       zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]Screen
}

// NewService creates a new access service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		entitlements: cfg.Entitlements,
		logger:       cfg.Logger,
		sessions:     make(map[string]Screen),
	}
}

// Current returns the screen a device is on. Devices without a session are
// on home.
func (s *Service) Current(deviceID string) Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if screen, ok := s.sessions[deviceID]; ok {
		return screen
	}
	return ScreenHome
}

// Navigate moves a device to a screen, subject to the entitlement policy.
// The returned screen is where the device actually ended up.
func (s *Service) Navigate(ctx context.Context, deviceID string, target Screen) (Screen, Decision, error) {
	if !Known(target) {
		return s.Current(deviceID), Decision{}, ErrUnknownScreen
	}

	state, err := s.entitlements.GetState(ctx, deviceID)
	if err != nil {
		return s.Current(deviceID), Decision{}, err
	}

	decision := CanEnter(state, target)
	landed := target
	if !decision.Allowed {
		landed = decision.RedirectTo
		s.logger.Info().
			Str("device_id", deviceID).
			Str("target", string(target)).
			Msg("navigation redirected to paywall")
	}

	s.set(deviceID, landed)
	return landed, decision, nil
}

// Back moves a device to the parent of its current screen. The landing
// screen still goes through the policy, so an expired device backing out of
// the paywall lands on home, not back in gated content.
func (s *Service) Back(ctx context.Context, deviceID string) (Screen, error) {
	parent := ParentOf(s.Current(deviceID))

	landed, _, err := s.Navigate(ctx, deviceID, parent)
	return landed, err
}

// CheckCurrent re-evaluates the policy for where the device already is,
// moving it to the paywall when its entitlement has lapsed. It returns the
// screen the device is on after the check.
func (s *Service) CheckCurrent(ctx context.Context, deviceID string) (Screen, error) {
	current := s.Current(deviceID)

	state, err := s.entitlements.GetState(ctx, deviceID)
	if err != nil {
		return current, err
	}

	decision := CanEnter(state, current)
	if decision.Allowed {
		return current, nil
	}

	s.set(deviceID, decision.RedirectTo)
	s.logger.Info().
		Str("device_id", deviceID).
		Str("from", string(current)).
		Msg("session forced to paywall")
	return decision.RedirectTo, nil
}

// ActiveSessions returns a snapshot of every tracked device and its screen.
func (s *Service) ActiveSessions() map[string]Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Screen, len(s.sessions))
	for id, screen := range s.sessions {
		out[id] = screen
	}
	return out
}

func (s *Service) set(deviceID string, screen Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[deviceID] = screen
}
