package notification

import (
	"context"
	"slices"
	"sync"
	"time"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

type InMemoryStore struct {
	mu            sync.RWMutex
	notifications []Notification
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Snapshot returns a func restoring the current outbox.
func (s *InMemoryStore) Snapshot() func() {
	s.mu.RLock()
	saved := slices.Clone(s.notifications)
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.notifications = saved
		s.mu.Unlock()
	}
}

func (s *InMemoryStore) Append(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

// ListByCitizen returns newest first.
func (s *InMemoryStore) ListByCitizen(_ context.Context, citizenID id.NationalID) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Notification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].CitizenID == citizenID {
			out = append(out, s.notifications[i])
		}
	}
	return out, nil
}

// ListUndelivered returns oldest first.
func (s *InMemoryStore) ListUndelivered(_ context.Context, limit int) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Notification
	for _, n := range s.notifications {
		if n.DeliveredAt == nil {
			out = append(out, n)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkDelivered(_ context.Context, ids []id.NotificationID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].DeliveredAt == nil && slices.Contains(ids, s.notifications[i].ID) {
			delivered := at
			s.notifications[i].DeliveredAt = &delivered
		}
	}
	return nil
}
