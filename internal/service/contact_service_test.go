package service_test

import (
	"context"
	"testing"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/service"
	"github.com/datalab-ge/datalab-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	receipt, err := f.contact.Create(ctx, &domain.CreateContactMessageRequest{
		Name:    " Giorgi ",
		Email:   "giorgi@example.ge",
		Subject: "RAID failure",
		Message: "Two disks in our RAID 5 array failed at once.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, service.ContactReceivedStatus, receipt.Status)
	assert.False(t, receipt.Timestamp.IsZero())

	messages, err := f.contact.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Giorgi", messages[0].Name)
	assert.Equal(t, domain.ContactStatusNew, messages[0].Status)
}

func TestContactService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := adminCtx()
	msg := testutil.CreateContactMessage(t, f.db, "Question", domain.ContactStatusNew)

	// warm the cache so the update has to invalidate it
	_, err := f.contact.List(ctx)
	require.NoError(t, err)

	require.NoError(t, f.contact.UpdateStatus(ctx, msg.ID, domain.ContactStatusReplied))
	require.NoError(t, f.contact.UpdateStatus(ctx, msg.ID, domain.ContactStatusRead))

	messages, err := f.contact.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, domain.ContactStatusRead, messages[0].Status)

	err = f.contact.UpdateStatus(ctx, msg.ID, "spam")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	err = f.contact.UpdateStatus(ctx, uuid.New(), domain.ContactStatusRead)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestContactService_Stats(t *testing.T) {
	f := newFixture(t)
	testutil.CreateContactMessage(t, f.db, "a", domain.ContactStatusNew)
	testutil.CreateContactMessage(t, f.db, "b", domain.ContactStatusNew)
	testutil.CreateContactMessage(t, f.db, "c", domain.ContactStatusRead)
	testutil.CreateContactMessage(t, f.db, "d", domain.ContactStatusReplied)

	stats, err := f.contact.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.ContactStatsDTO{Total: 4, New: 2, Read: 1, Replied: 1}, stats)
}
