// Package relay publishes outbox notifications to the message broker.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

// Producer publishes one keyed message.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Outbox is the part of the notification store the relay drains.
type Outbox interface {
	ListUndelivered(ctx context.Context, limit int) ([]notification.Notification, error)
	MarkDelivered(ctx context.Context, ids []id.NotificationID, at time.Time) error
}

// TxRunner runs fn inside the store transaction the workflows use.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type directRunner struct{}

func (directRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Worker periodically publishes undelivered notifications. Publish failures
// are logged and retried on the next tick; they never reach the workflows.
type Worker struct {
	outbox    Outbox
	producer  Producer
	tx        TxRunner
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

type Option func(*Worker)

func WithInterval(d time.Duration) Option {
	return func(w *Worker) { w.interval = d }
}

func WithBatchSize(n int) Option {
	return func(w *Worker) { w.batchSize = n }
}

// WithTx marks rows delivered through tx. With the in-memory stores this keeps
// a rolled-back workflow from restoring rows the relay already delivered.
func WithTx(tx TxRunner) Option {
	return func(w *Worker) { w.tx = tx }
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) { w.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) { w.metrics = m }
}

func NewWorker(outbox Outbox, producer Producer, opts ...Option) *Worker {
	w := &Worker{
		outbox:    outbox,
		producer:  producer,
		tx:        directRunner{},
		interval:  2 * time.Second,
		batchSize: 100,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run drains the outbox every interval until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := w.RelayOnce(ctx); err != nil {
				w.logger.WarnContext(ctx, "notification relay pass failed", "error", err)
			}
		}
	}
}

type message struct {
	ID        string    `json:"id"`
	CitizenID string    `json:"citizen_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RelayOnce publishes one batch and returns how many were delivered.
func (w *Worker) RelayOnce(ctx context.Context) (int, error) {
	pending, err := w.outbox.ListUndelivered(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	delivered := make([]id.NotificationID, 0, len(pending))
	for _, n := range pending {
		value, err := json.Marshal(message{
			ID:        n.ID.String(),
			CitizenID: n.CitizenID.String(),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
		if err != nil {
			return 0, err
		}
		if err := w.producer.Publish(ctx, []byte(n.CitizenID.String()), value); err != nil {
			w.metrics.IncrementRelayError()
			w.logger.WarnContext(ctx, "failed to publish notification",
				"notification_id", n.ID.String(),
				"citizen_id", n.CitizenID.String(),
				"error", err,
			)
			// keep per-citizen order: stop at the first failure
			break
		}
		delivered = append(delivered, n.ID)
	}

	if len(delivered) == 0 {
		return 0, nil
	}
	err = w.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return w.outbox.MarkDelivered(txCtx, delivered, w.now())
	})
	if err != nil {
		return 0, err
	}
	w.metrics.AddNotificationsRelayed(len(delivered))
	return len(delivered), nil
}
