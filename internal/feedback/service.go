package feedback

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidType is returned when a message carries an unknown type.
var ErrInvalidType = errors.New("invalid feedback type")

// ErrEmptyMessage is returned when a message body is blank.
var ErrEmptyMessage = errors.New("feedback message is empty")

// ServiceConfig holds configuration for the feedback service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service provides feedback inbox operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a new feedback service.
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

// Send stores a new feedback message and returns it. Unknown types default
// to "other"; an explicit but malformed type is rejected.
func (s *Service) Send(ctx context.Context, msgType, body, contact string) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	if msgType == "" {
		msgType = TypeOther
	}
	if !ValidType(msgType) {
		return nil, ErrInvalidType
	}

	now := s.now()
	msg := &Message{
		ID:      strconv.FormatInt(now.UnixMilli(), 10),
		Date:    now.UnixMilli(),
		Type:    msgType,
		Message: body,
		Contact: strings.TrimSpace(contact),
		Read:    false,
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("message_id", msg.ID).
		Str("type", msg.Type).
		Msg("feedback received")
	return msg, nil
}

// List returns the inbox, newest first.
func (s *Service) List(ctx context.Context) ([]*Message, error) {
	return s.repo.List(ctx)
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a message from the inbox.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("message_id", id).Msg("feedback deleted")
	return nil
}

// UnreadCount reports how many inbox messages are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range all {
		if !m.Read {
			count++
		}
	}
	return count, nil
}
