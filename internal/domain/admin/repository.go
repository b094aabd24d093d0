package admin

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("users").Count(&n).Error
	return n, err
}

func (r *statsRepository) BookingsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		N      int64
	}
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *statsRepository) Revenue(ctx context.Context, statuses []string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("COALESCE(SUM(total_price), 0)").
		Where("status IN ?", statuses).
		Scan(&total).Error
	return total, err
}

func (r *statsRepository) CountInquiries(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("inquiries").Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *statsRepository) BookingsSince(ctx context.Context, since time.Time) ([]bookingRow, error) {
	var rows []bookingRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("created_at, status, total_price").
		Where("created_at >= ?", since).
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) TopItems(ctx context.Context, revenueStatuses []string, limit int) ([]TopItem, error) {
	var items []TopItem
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`item_type, item_id, MAX(item_name) AS item_name, COUNT(*) AS bookings,
			COALESCE(SUM(CASE WHEN status IN ? THEN total_price ELSE 0 END), 0) AS revenue`, revenueStatuses).
		Group("item_type, item_id").
		Order("bookings DESC, revenue DESC, item_id ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}
