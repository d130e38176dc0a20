package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/ratelimit"
)

// ErrRateLimited is returned when the sender has no messages left today.
var ErrRateLimited = ratelimit.ErrLimited

// Archive records accepted messages.
type Archive interface {
	SaveMessage(ctx context.Context, msg Message) error
}

// Service ties validation, rate limiting, relay and archive together.
type Service struct {
	relay   Relay
	limiter *ratelimit.Limiter
	archive Archive
	logger  *log.Logger
	now     func() time.Time
}

type ServiceOption func(*Service)

func WithArchive(a Archive) ServiceOption {
	return func(s *Service) { s.archive = a }
}

func WithLogger(l *log.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func NewService(relay Relay, limiter *ratelimit.Limiter, opts ...ServiceOption) *Service {
	s := &Service{
		relay:   relay,
		limiter: limiter,
		logger:  log.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Remaining returns how many messages sender may still send in the current
// window.
func (s *Service) Remaining(ctx context.Context, sender string) (int, error) {
	return s.limiter.Remaining(ctx, ratelimit.Key(sender))
}

// Limit returns the messages allowed per window.
func (s *Service) Limit() int {
	return s.limiter.Max()
}

// Submit validates msg, reserves one of the sender's sends and relays the
// message. A failed relay gives the send back. It returns the messages left
// after this one.
func (s *Service) Submit(ctx context.Context, sender string, msg Message) (Message, int, error) {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return msg, 0, err
	}

	res, remaining, err := s.limiter.Reserve(ctx, ratelimit.Key(sender))
	if err != nil {
		if errors.Is(err, ratelimit.ErrLimited) {
			s.logger.Info("contact rate limited", "sender", sender)
		}
		return msg, 0, err
	}

	msg.ID = uuid.NewString()
	msg.Sender = sender
	msg.CreatedAt = s.now().UTC()

	if err := s.relay.Send(ctx, msg); err != nil {
		s.logger.Error("relay contact message", "id", msg.ID, "err", err)
		if rerr := s.limiter.Release(context.WithoutCancel(ctx), res); rerr != nil {
			s.logger.Warn("release contact reservation", "sender", sender, "err", rerr)
		}
		return msg, 0, fmt.Errorf("relay message %s: %w", msg.ID, err)
	}

	if s.archive != nil {
		if err := s.archive.SaveMessage(ctx, msg); err != nil {
			// The message is already delivered; losing the log entry is not fatal.
			s.logger.Warn("archive contact message", "id", msg.ID, "err", err)
		}
	}

	s.logger.Info("contact message sent", "id", msg.ID, "remaining", remaining)
	return msg, remaining, nil
}
