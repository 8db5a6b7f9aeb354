package registration

import (
	"context"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

// Store persists registration requests.
//
// Create returns sentinel.ErrAlreadyUsed when the citizen already has a
// Pending request of the same type. FindByID and Execute return
// sentinel.ErrNotFound for unknown ids. FindPending returns (nil, nil) when
// there is no pending request.
type Store interface {
	Create(ctx context.Context, r Request) error
	FindByID(ctx context.Context, requestID id.RequestID) (*Request, error)
	FindPending(ctx context.Context, citizenID id.NationalID, t RequestType) (*Request, error)
	ListPending(ctx context.Context, types ...RequestType) ([]Request, error)
	ListByCitizen(ctx context.Context, citizenID id.NationalID) ([]Request, error)
	Execute(ctx context.Context, requestID id.RequestID, validate func(*Request) error, mutate func(*Request)) (*Request, error)
}
