package notification

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	txcontext "github.com/MindOfAhmed/DigitalSociety/pkg/platform/tx"
)

// PostgresStore is the notification outbox table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, n Notification) error {
	_, err := txcontext.ExecutorFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO notifications (id, citizen_id, message, created_at)
		VALUES ($1, $2, $3, $4)`,
		n.ID.String(), n.CitizenID.String(), n.Message, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCitizen(ctx context.Context, citizenID id.NationalID) ([]Notification, error) {
	return s.query(ctx, `
		SELECT id, citizen_id, message, created_at, delivered_at
		FROM notifications WHERE citizen_id = $1
		ORDER BY created_at DESC`, citizenID.String())
}

func (s *PostgresStore) ListUndelivered(ctx context.Context, limit int) ([]Notification, error) {
	return s.query(ctx, `
		SELECT id, citizen_id, message, created_at, delivered_at
		FROM notifications WHERE delivered_at IS NULL
		ORDER BY created_at
		LIMIT $1`, limit)
}

func (s *PostgresStore) MarkDelivered(ctx context.Context, ids []id.NotificationID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, nid := range ids {
		raw[i] = nid.String()
	}
	_, err := txcontext.ExecutorFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE notifications SET delivered_at = $2
		WHERE id::text = ANY($1) AND delivered_at IS NULL`,
		pq.Array(raw), at,
	)
	if err != nil {
		return fmt.Errorf("mark notifications delivered: %w", err)
	}
	return nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]Notification, error) {
	rows, err := txcontext.ExecutorFrom(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var (
			n           Notification
			rawID       string
			deliveredAt sql.NullTime
		)
		if err := rows.Scan(&rawID, &n.CitizenID, &n.Message, &n.CreatedAt, &deliveredAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if n.ID, err = id.ParseNotificationID(rawID); err != nil {
			return nil, fmt.Errorf("scan notification id: %w", err)
		}
		if deliveredAt.Valid {
			n.DeliveredAt = &deliveredAt.Time
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
