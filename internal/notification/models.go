// Package notification records citizen notifications in an outbox that
// shares the workflow transaction, and relays them to the message broker.
package notification

import (
	"time"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

// Notification is one message addressed to a citizen. DeliveredAt is set once
// the relay has published it.
type Notification struct {
	ID          id.NotificationID `json:"id"`
	CitizenID   id.NationalID     `json:"citizen_id"`
	Message     string            `json:"message"`
	CreatedAt   time.Time         `json:"created_at"`
	DeliveredAt *time.Time        `json:"delivered_at,omitempty"`
}
