package notification

import (
	"context"
	"log/slog"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

// Service appends notifications to the outbox. Notify runs inside the
// caller's transaction, so a notification exists iff the transition committed.
type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Notify(ctx context.Context, citizenID id.NationalID, message string) error {
	n := Notification{
		ID:        id.NewNotificationID(),
		CitizenID: citizenID,
		Message:   message,
		CreatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.Append(ctx, n); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to enqueue notification")
	}
	s.logger.DebugContext(ctx, "notification enqueued",
		"notification_id", n.ID.String(),
		"citizen_id", citizenID.String(),
	)
	return nil
}

func (s *Service) ListForCitizen(ctx context.Context, citizenID id.NationalID) ([]Notification, error) {
	out, err := s.store.ListByCitizen(ctx, citizenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list notifications")
	}
	return out, nil
}
