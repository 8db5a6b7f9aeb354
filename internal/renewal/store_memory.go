package renewal

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	requests map[id.RequestID]Request
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{requests: make(map[id.RequestID]Request)}
}

func (s *InMemoryStore) Snapshot() func() {
	s.mu.RLock()
	saved := maps.Clone(s.requests)
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.requests = saved
		s.mu.Unlock()
	}
}

func (s *InMemoryStore) Create(_ context.Context, r Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[r.ID]; ok {
		return fmt.Errorf("renewal request %s: %w", r.ID, sentinel.ErrAlreadyUsed)
	}
	if r.Status == request.StatusPending && s.pendingLocked(r.CitizenID, r.Type) != nil {
		return fmt.Errorf("pending %s renewal for %s: %w", r.Type, r.CitizenID, sentinel.ErrAlreadyUsed)
	}
	s.requests[r.ID] = r
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, requestID id.RequestID) (*Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &r, nil
}

func (s *InMemoryStore) FindPending(_ context.Context, citizenID id.NationalID, t RequestType) (*Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingLocked(citizenID, t), nil
}

func (s *InMemoryStore) pendingLocked(citizenID id.NationalID, t RequestType) *Request {
	for _, r := range s.requests {
		if r.CitizenID == citizenID && r.Type == t && r.Status == request.StatusPending {
			return &r
		}
	}
	return nil
}

// ListPending returns pending requests oldest first, optionally limited to types.
func (s *InMemoryStore) ListPending(_ context.Context, types ...RequestType) ([]Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Request
	for _, r := range s.requests {
		if r.Status != request.StatusPending {
			continue
		}
		if len(types) > 0 && !slices.Contains(types, r.Type) {
			continue
		}
		out = append(out, r)
	}
	sortBySubmission(out)
	return out, nil
}

// ListByCitizen returns the citizen's requests oldest first.
func (s *InMemoryStore) ListByCitizen(_ context.Context, citizenID id.NationalID) ([]Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Request
	for _, r := range s.requests {
		if r.CitizenID == citizenID {
			out = append(out, r)
		}
	}
	sortBySubmission(out)
	return out, nil
}

func (s *InMemoryStore) Execute(_ context.Context, requestID id.RequestID, validate func(*Request) error, mutate func(*Request)) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(&r); err != nil {
		return nil, err
	}
	mutate(&r)
	s.requests[requestID] = r
	return &r, nil
}

func sortBySubmission(rs []Request) {
	slices.SortFunc(rs, func(a, b Request) int {
		if c := a.SubmittedAt.Compare(b.SubmittedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
}
