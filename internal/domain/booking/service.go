package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"travelbook/internal/domain/catalog"
)

type Service struct {
	bookings BookingRepository
	items    ItemResolver
	notifier Notifier
	now      func() time.Time
}

func NewService(bookings BookingRepository, items ItemResolver) *Service {
	return &Service{bookings: bookings, items: items, now: time.Now}
}

// WithNotifier enables customer notifications for admin status changes.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// Create books a catalog item for userID at the item's current price.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*Booking, error) {
	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.Guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrValidation)
	}

	item, err := s.items.Bookable(ctx, req.ItemType, req.ItemID)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrNotFound):
		return nil, ErrItemNotFound
	case errors.Is(err, catalog.ErrNotBookable), errors.Is(err, catalog.ErrUnknownKind):
		return nil, ErrNotBookable
	default:
		return nil, fmt.Errorf("resolve item: %w", err)
	}

	units, err := unitsFor(item.Kind, start, end, req.Guests)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		UserID:       userID,
		ItemType:     item.Kind,
		ItemID:       item.ID,
		ItemName:     item.Name,
		StartDate:    start,
		EndDate:      end,
		Guests:       req.Guests,
		Units:        units,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   math.Round(float64(units)*item.UnitPrice*100) / 100,
		Status:       StatusPending,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

// parseRange checks end >= start and that start is not in the past.
func (s *Service) parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start_date", ErrValidation)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end_date", ErrValidation)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date is before start_date", ErrValidation)
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date is in the past", ErrValidation)
	}
	return start, end, nil
}

// unitsFor returns how many times the unit price is charged: nights for
// hotels, days (inclusive) for drivers, guests for everything else.
func unitsFor(kind catalog.Kind, start, end time.Time, guests int) (int, error) {
	days := int(end.Sub(start).Hours() / 24)
	switch kind {
	case catalog.KindHotel:
		if days < 1 {
			return 0, fmt.Errorf("%w: a hotel stay needs at least one night", ErrValidation)
		}
		return days, nil
	case catalog.KindDriver:
		return days + 1, nil
	default:
		return guests, nil
	}
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]Booking, int64, error) {
	return s.bookings.List(ctx, ListFilter{UserID: userID, Limit: limit, Offset: offset})
}

func (s *Service) List(ctx context.Context, status Status, limit, offset int) ([]Booking, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.bookings.List(ctx, ListFilter{Status: status, Limit: limit, Offset: offset})
}

// Get returns a booking visible to the actor: its owner or an admin.
func (s *Service) Get(ctx context.Context, id, actorID int64, isAdmin bool) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != actorID {
		return nil, ErrForbidden
	}
	return b, nil
}

// Cancel lets the owner cancel a pending or confirmed booking.
func (s *Service) Cancel(ctx context.Context, id, userID int64) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return s.transition(ctx, b, StatusCancelled)
}

// UpdateStatus is the admin status change.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next Status) (*Booking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.transition(ctx, b, next)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		// best effort: the status change is already committed
		_ = s.notifier.BookingStatusChanged(ctx, updated.UserID, updated.ID, updated.ItemName, string(updated.Status))
	}
	return updated, nil
}

func (s *Service) transition(ctx context.Context, b *Booking, next Status) (*Booking, error) {
	if !b.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, b.Status, next, s.now()); err != nil {
		if errors.Is(err, ErrStatusChanged) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return s.bookings.GetByID(ctx, b.ID)
}
