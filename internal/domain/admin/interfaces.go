package admin

import (
	"context"
	"time"

	"travelbook/internal/domain/catalog"
)

// CatalogCounter is implemented by catalog.Service.
type CatalogCounter interface {
	Counts(ctx context.Context) (map[catalog.Kind]int64, error)
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	BookingsByStatus(ctx context.Context) (map[string]int64, error)
	// Revenue sums total_price of bookings in the given statuses.
	Revenue(ctx context.Context, statuses []string) (float64, error)
	CountInquiries(ctx context.Context, status string) (int64, error)
	BookingsSince(ctx context.Context, since time.Time) ([]bookingRow, error)
	TopItems(ctx context.Context, revenueStatuses []string, limit int) ([]TopItem, error)
}
