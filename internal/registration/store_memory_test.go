package registration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
)

func pendingRequest(citizen id.NationalID, t RequestType, at time.Time) Request {
	return Request{
		ID:        id.NewRequestID(),
		CitizenID: citizen,
		Type:      t,
		Review:    request.NewPendingReview(at),
	}
}

func TestInMemoryStoreOnePendingPerType(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	first := pendingRequest("a", TypeVehicle, at)
	require.NoError(t, store.Create(ctx, first))
	assert.ErrorIs(t, store.Create(ctx, pendingRequest("a", TypeVehicle, at)), sentinel.ErrAlreadyUsed)
	assert.ErrorIs(t, store.Create(ctx, first), sentinel.ErrAlreadyUsed)
	require.NoError(t, store.Create(ctx, pendingRequest("a", TypeProperty, at)))

	_, err := store.Execute(ctx, first.ID, func(*Request) error { return nil }, func(r *Request) {
		r.ApplyRejection(at, "inspector", "")
	})
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, pendingRequest("a", TypeVehicle, at)), "resolved requests free the slot")
}

func TestInMemoryStoreListPending(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	late := pendingRequest("a", TypeAddress, at.Add(time.Hour))
	early := pendingRequest("b", TypeVehicle, at)
	resolved := pendingRequest("c", TypeVehicle, at)
	resolved.ApplyApproval(at, "inspector")
	for _, r := range []Request{late, early, resolved} {
		require.NoError(t, store.Create(ctx, r))
	}

	all, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, early.ID, all[0].ID)
	assert.Equal(t, late.ID, all[1].ID)

	vehicles, err := store.ListPending(ctx, TypeVehicle)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, early.ID, vehicles[0].ID)

	pending, err := store.FindPending(ctx, "c", TypeVehicle)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestInMemoryStoreSnapshotRestores(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	kept := pendingRequest("a", TypeAddress, time.Now())
	require.NoError(t, store.Create(ctx, kept))

	restore := store.Snapshot()
	require.NoError(t, store.Create(ctx, pendingRequest("a", TypeVehicle, time.Now())))
	restore()

	mine, err := store.ListByCitizen(ctx, "a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, kept.ID, mine[0].ID)
}

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		ok   bool
	}{
		{"no claim", Submission{}, false},
		{"address without proof", Submission{Claim: AddressClaim{}}, false},
		{"address needs no picture", Submission{
			Claim:         AddressClaim{Line: addressLineFixture()},
			ProofDocument: []byte("lease"),
		}, true},
		{"vehicle without picture", Submission{
			Claim:         vehicleClaimFixture(),
			ProofDocument: []byte("invoice"),
		}, false},
		{"vehicle", Submission{
			Claim:         vehicleClaimFixture(),
			Picture:       []byte("jpeg"),
			ProofDocument: []byte("invoice"),
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func addressLineFixture() records.AddressLine {
	return records.AddressLine{Country: "Egypt", City: "Alexandria", Street: "Corniche", BuildingNumber: 4}
}

func vehicleClaimFixture() VehicleClaim {
	return VehicleClaim{
		SerialNumber: "S1", Model: "Corolla", Manufacturer: "Toyota", Year: 2019,
		VehicleType: "Sedan", PlateNumber: "ABC-123",
	}
}
