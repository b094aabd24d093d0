package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/database"
	"travelbook/internal/domain/catalog"
)

func TestBookingRepository(t *testing.T) {
	db, err := database.ConnectMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Booking{}))

	repo := NewBookingRepository(db)
	ctx := context.Background()

	for i, st := range []Status{StatusPending, StatusPending, StatusConfirmed} {
		b := &Booking{UserID: int64(1 + i%2), ItemType: catalog.KindHotel, ItemID: 1, Status: st}
		require.NoError(t, repo.Create(ctx, b))
	}

	items, total, err := repo.List(ctx, ListFilter{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	_, total, err = repo.List(ctx, ListFilter{Status: StatusPending, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateStatus(ctx, 1, StatusPending, StatusCancelled, at))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, 1, StatusPending, StatusConfirmed, at), ErrStatusChanged)

	b, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.True(t, at.Equal(*b.CancelledAt))

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
