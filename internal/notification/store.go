package notification

import (
	"context"
	"time"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

type Store interface {
	Append(ctx context.Context, n Notification) error
	ListByCitizen(ctx context.Context, citizenID id.NationalID) ([]Notification, error)
	ListUndelivered(ctx context.Context, limit int) ([]Notification, error)
	MarkDelivered(ctx context.Context, ids []id.NotificationID, at time.Time) error
}
