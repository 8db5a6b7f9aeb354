package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

const citizen id.NationalID = "29801011234567"

func TestNotifyAppendsToOutbox(t *testing.T) {
	store := NewInMemoryStore()
	svc := NewService(store)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	require.NoError(t, svc.Notify(ctx, citizen, "Your Passport renewal request has been approved."))
	require.NoError(t, svc.Notify(ctx, "other", "not yours"))

	got, err := svc.ListForCitizen(ctx, citizen)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Your Passport renewal request has been approved.", got[0].Message)
	assert.Equal(t, now, got[0].CreatedAt)
	assert.Nil(t, got[0].DeliveredAt)
}

func TestInMemoryOutboxDelivery(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	first := Notification{ID: id.NewNotificationID(), CitizenID: citizen, Message: "one"}
	second := Notification{ID: id.NewNotificationID(), CitizenID: citizen, Message: "two"}
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	pending, err := store.ListUndelivered(ctx, 1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	require.NoError(t, store.MarkDelivered(ctx, []id.NotificationID{first.ID}, time.Now()))

	pending, err = store.ListUndelivered(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	all, err := store.ListByCitizen(ctx, citizen)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Message, "newest first")
}
