package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelbook/internal/database"
	"travelbook/internal/domain/auth"
	"travelbook/internal/domain/booking"
	"travelbook/internal/domain/catalog"
	"travelbook/internal/domain/chat"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectMemory()
	require.NoError(t, err)
	models := append(catalog.Models(), &auth.User{}, &booking.Booking{}, &chat.Inquiry{}, &chat.Message{})
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

var now = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&auth.User{Email: "a@example.com", PasswordHash: "x", Role: auth.RoleCustomer}).Error)
	require.NoError(t, db.Create(&auth.User{Email: "b@example.com", PasswordHash: "x", Role: auth.RoleAdmin}).Error)
	require.NoError(t, db.Create(&catalog.Hotel{Name: "Seaside"}).Error)

	bookings := []booking.Booking{
		{UserID: 1, ItemType: catalog.KindHotel, ItemID: 1, ItemName: "Seaside", TotalPrice: 300, Status: booking.StatusConfirmed, CreatedAt: now.AddDate(0, 0, -1)},
		{UserID: 1, ItemType: catalog.KindHotel, ItemID: 1, ItemName: "Seaside", TotalPrice: 200, Status: booking.StatusCompleted, CreatedAt: now.AddDate(0, -2, 0)},
		{UserID: 1, ItemType: catalog.KindHotel, ItemID: 1, ItemName: "Seaside", TotalPrice: 999, Status: booking.StatusCancelled, CreatedAt: now.AddDate(0, -2, 0)},
		{UserID: 1, ItemType: catalog.KindEvent, ItemID: 4, ItemName: "Fado", TotalPrice: 50, Status: booking.StatusPending, CreatedAt: now},
		{UserID: 1, ItemType: catalog.KindEvent, ItemID: 4, ItemName: "Fado", TotalPrice: 70, Status: booking.StatusConfirmed, CreatedAt: now.AddDate(-1, 0, 0)},
	}
	require.NoError(t, db.Create(&bookings).Error)

	require.NoError(t, db.Create(&chat.Inquiry{Name: "A", Email: "a@example.com", Status: chat.InquiryOpen, LastMessageAt: now}).Error)
	require.NoError(t, db.Create(&chat.Inquiry{Name: "B", Email: "b@example.com", Status: chat.InquiryClosed, LastMessageAt: now}).Error)
}

func newService(db *gorm.DB) *Service {
	s := NewService(NewStatsRepository(db), catalog.NewService(db, nil))
	s.now = func() time.Time { return now }
	return s
}

func TestService_Summary(t *testing.T) {
	db := testDB(t)
	seed(t, db)

	summary, err := newService(db).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Users)
	assert.Equal(t, int64(1), summary.Catalog[catalog.KindHotel])
	assert.Equal(t, int64(0), summary.Catalog[catalog.KindCruise])
	assert.Equal(t, int64(5), summary.TotalBookings)
	assert.Equal(t, int64(2), summary.BookingsByStatus["confirmed"])
	assert.InDelta(t, 570.0, summary.Revenue, 0.001)
	assert.Equal(t, int64(1), summary.OpenInquiries)
}

func TestService_MonthlyBookings(t *testing.T) {
	db := testDB(t)
	seed(t, db)

	points, err := newService(db).MonthlyBookings(context.Background(), 3)
	require.NoError(t, err)

	want := []MonthlyPoint{
		{Month: "2026-03", Bookings: 2, Revenue: 200},
		{Month: "2026-04", Bookings: 0, Revenue: 0},
		{Month: "2026-05", Bookings: 2, Revenue: 300},
	}
	assert.Equal(t, want, points)

	points, err = newService(db).MonthlyBookings(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, points, DefaultMonths)
	assert.Equal(t, "2025-12", points[0].Month)
}

func TestService_TopItems(t *testing.T) {
	db := testDB(t)
	seed(t, db)

	items, err := newService(db).TopItems(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, catalog.KindHotel, items[0].ItemType)
	assert.Equal(t, "Seaside", items[0].ItemName)
	assert.Equal(t, int64(3), items[0].Bookings)
	assert.InDelta(t, 500.0, items[0].Revenue, 0.001)

	assert.Equal(t, int64(4), items[1].ItemID)
	assert.InDelta(t, 70.0, items[1].Revenue, 0.001)

	items, err = newService(testDB(t)).TopItems(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

type failingCounter struct{}

func (failingCounter) Counts(context.Context) (map[catalog.Kind]int64, error) {
	return nil, errors.New("boom")
}

func TestService_Summary_PropagatesErrors(t *testing.T) {
	db := testDB(t)
	s := NewService(NewStatsRepository(db), failingCounter{})

	_, err := s.Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog counts")
}
