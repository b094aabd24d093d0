package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/database"
	"travelbook/internal/domain/catalog"
)

func setupService(t *testing.T) (*Service, *catalog.Hotel) {
	t.Helper()
	db, err := database.ConnectMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(append(catalog.Models(), &Favorite{})...))

	hotel := &catalog.Hotel{Name: "Seaside Inn", PricePerNight: 120}
	require.NoError(t, db.Create(hotel).Error)

	return NewService(NewRepository(db), catalog.NewService(db, nil)), hotel
}

func TestService_AddListRemove(t *testing.T) {
	svc, hotel := setupService(t)
	ctx := context.Background()

	f, err := svc.Add(ctx, 5, catalog.KindHotel, hotel.ID)
	require.NoError(t, err)
	assert.NotZero(t, f.ID)

	_, err = svc.Add(ctx, 5, catalog.KindHotel, hotel.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)

	_, err = svc.Add(ctx, 6, catalog.KindHotel, hotel.ID)
	require.NoError(t, err, "another user may save the same item")

	yes, err := svc.IsFavorite(ctx, 5, catalog.KindHotel, hotel.ID)
	require.NoError(t, err)
	assert.True(t, yes)

	items, total, err := svc.List(ctx, 5, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.KindHotel, items[0].ItemType)

	_, total, err = svc.List(ctx, 5, catalog.KindCruise, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, svc.Remove(ctx, 5, catalog.KindHotel, hotel.ID))
	assert.ErrorIs(t, svc.Remove(ctx, 5, catalog.KindHotel, hotel.ID), ErrNotFound)
}

func TestService_Add_Validation(t *testing.T) {
	svc, hotel := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 5, catalog.KindCruise, hotel.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Add(ctx, 5, catalog.Kind("villa"), hotel.ID)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, _, err = svc.List(ctx, 5, catalog.Kind("villa"), 20, 0)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
