package admin

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultMonths   = 6
	MaxMonths       = 24
	DefaultTopItems = 5
	MaxTopItems     = 50
)

// revenueStatuses are the booking statuses that count as earned.
var revenueStatuses = []string{"confirmed", "completed"}

type Service struct {
	stats   StatsRepository
	catalog CatalogCounter
	now     func() time.Time
}

func NewService(stats StatsRepository, catalog CatalogCounter) *Service {
	return &Service{stats: stats, catalog: catalog, now: time.Now}
}

// Summary runs the dashboard queries concurrently.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Catalog, err = s.catalog.Counts(ctx)
		return wrap("catalog counts", err)
	})
	g.Go(func() (err error) {
		out.Users, err = s.stats.CountUsers(ctx)
		return wrap("count users", err)
	})
	g.Go(func() (err error) {
		out.BookingsByStatus, err = s.stats.BookingsByStatus(ctx)
		return wrap("bookings by status", err)
	})
	g.Go(func() (err error) {
		out.Revenue, err = s.stats.Revenue(ctx, revenueStatuses)
		return wrap("revenue", err)
	})
	g.Go(func() (err error) {
		out.OpenInquiries, err = s.stats.CountInquiries(ctx, "open")
		return wrap("open inquiries", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, n := range out.BookingsByStatus {
		out.TotalBookings += n
	}
	return &out, nil
}

// MonthlyBookings returns one point per calendar month (UTC), oldest first,
// ending with the current month. Months without bookings are zero.
func (s *Service) MonthlyBookings(ctx context.Context, months int) ([]MonthlyPoint, error) {
	if months <= 0 {
		months = DefaultMonths
	}
	if months > MaxMonths {
		months = MaxMonths
	}

	now := s.now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	rows, err := s.stats.BookingsSince(ctx, first)
	if err != nil {
		return nil, fmt.Errorf("bookings since %s: %w", first.Format("2006-01"), err)
	}

	points := make([]MonthlyPoint, months)
	index := make(map[string]int, months)
	for i := range points {
		key := first.AddDate(0, i, 0).Format("2006-01")
		points[i].Month = key
		index[key] = i
	}

	for _, row := range rows {
		i, ok := index[row.CreatedAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		points[i].Bookings++
		if isRevenue(row.Status) {
			points[i].Revenue += row.TotalPrice
		}
	}
	return points, nil
}

func (s *Service) TopItems(ctx context.Context, limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = DefaultTopItems
	}
	if limit > MaxTopItems {
		limit = MaxTopItems
	}
	items, err := s.stats.TopItems(ctx, revenueStatuses, limit)
	if err != nil {
		return nil, fmt.Errorf("top items: %w", err)
	}
	if items == nil {
		items = []TopItem{}
	}
	return items, nil
}

func isRevenue(status string) bool {
	for _, st := range revenueStatuses {
		if st == status {
			return true
		}
	}
	return false
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
