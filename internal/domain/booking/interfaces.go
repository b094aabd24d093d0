package booking

import (
	"context"
	"time"

	"travelbook/internal/domain/catalog"
)

type ListFilter struct {
	UserID int64
	Status Status
	Limit  int
	Offset int
}

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, f ListFilter) ([]Booking, int64, error)
	// UpdateStatus moves a booking from one status to another and fails with
	// ErrStatusChanged if the stored status is no longer from.
	UpdateStatus(ctx context.Context, id int64, from, to Status, at time.Time) error
}

// ItemResolver looks up the catalog item being booked.
type ItemResolver interface {
	Bookable(ctx context.Context, kind catalog.Kind, id int64) (*catalog.BookableItem, error)
}

// Notifier tells customers about status changes made by an admin.
type Notifier interface {
	BookingStatusChanged(ctx context.Context, userID, bookingID int64, itemName, status string) error
}
