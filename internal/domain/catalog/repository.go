package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Filters struct {
	Search        string
	DestinationID int64
	Featured      *bool
	Category      string
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

// tableInfo describes what a catalog table supports in list queries.
type tableInfo struct {
	searchColumns  []string
	sortColumns    map[string]string
	defaultSort    string
	hasDestination bool
	hasFeatured    bool
	hasCategory    bool
	preload        []string
}

// Repository is the gorm-backed store shared by all catalog kinds.
type Repository[T any] struct {
	db   *gorm.DB
	info tableInfo
}

func newRepository[T any](db *gorm.DB, info tableInfo) *Repository[T] {
	return &Repository[T]{db: db, info: info}
}

// GetAll returns one page of live rows and the total count before paging.
func (r *Repository[T]) GetAll(ctx context.Context, f Filters) ([]T, int64, error) {
	var (
		items []T
		total int64
	)

	q := r.db.WithContext(ctx).
		Model(new(T)).
		Where("deleted_at IS NULL")

	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" && len(r.info.searchColumns) > 0 {
		conds := make([]string, 0, len(r.info.searchColumns))
		args := make([]any, 0, len(r.info.searchColumns))
		for _, col := range r.info.searchColumns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, "%"+s+"%")
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	if f.DestinationID > 0 && r.info.hasDestination {
		q = q.Where("destination_id = ?", f.DestinationID)
	}
	if f.Featured != nil && r.info.hasFeatured {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Category != "" && r.info.hasCategory {
		q = q.Where("category = ?", f.Category)
	}

	// clone before counting so Count does not leak into the page query
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(r.orderExpr(f.SortBy, f.SortOrder))
	for _, rel := range r.info.preload {
		q = q.Preload(rel)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// orderExpr only ever returns whitelisted column names.
func (r *Repository[T]) orderExpr(sortBy, sortOrder string) string {
	sortOrder = strings.ToLower(strings.TrimSpace(sortOrder))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	col, ok := r.info.sortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		col = r.info.defaultSort
	}
	return col + " " + strings.ToUpper(sortOrder) + ", id ASC"
}

func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	q := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id)
	for _, rel := range r.info.preload {
		q = q.Preload(rel)
	}
	if err := q.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *Repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&n).Error
	return n > 0, err
}

func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Omit("Destination").Create(item).Error
}

func (r *Repository[T]) Update(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Omit("Destination").Save(item).Error
}

// Delete soft deletes a row (sets deleted_at).
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("deleted_at IS NULL").
		Count(&n).Error
	return n, err
}

var (
	destinationTable = tableInfo{
		searchColumns: []string{"name", "country", "region"},
		sortColumns:   map[string]string{"name": "name", "country": "country", "created_at": "created_at"},
		defaultSort:   "created_at",
		hasFeatured:   true,
	}
	hotelTable = tableInfo{
		searchColumns:  []string{"name", "address"},
		sortColumns:    map[string]string{"name": "name", "price": "price_per_night", "stars": "stars", "created_at": "created_at"},
		defaultSort:    "created_at",
		hasDestination: true,
		hasFeatured:    true,
		preload:        []string{"Destination"},
	}
	packageTable = tableInfo{
		searchColumns:  []string{"name", "description"},
		sortColumns:    map[string]string{"name": "name", "price": "price", "duration": "duration_days", "created_at": "created_at"},
		defaultSort:    "created_at",
		hasDestination: true,
		hasFeatured:    true,
		preload:        []string{"Destination"},
	}
	cruiseTable = tableInfo{
		searchColumns: []string{"name", "cruise_line", "departure_port"},
		sortColumns:   map[string]string{"name": "name", "price": "price", "departure": "departure_date", "created_at": "created_at"},
		defaultSort:   "created_at",
		hasFeatured:   true,
	}
	driverTable = tableInfo{
		searchColumns:  []string{"name", "vehicle_type", "vehicle_model"},
		sortColumns:    map[string]string{"name": "name", "rate": "daily_rate", "experience": "experience_years", "created_at": "created_at"},
		defaultSort:    "created_at",
		hasDestination: true,
		preload:        []string{"Destination"},
	}
	eventTable = tableInfo{
		searchColumns:  []string{"name", "venue", "category"},
		sortColumns:    map[string]string{"name": "name", "price": "price", "date": "starts_at", "created_at": "created_at"},
		defaultSort:    "starts_at",
		hasDestination: true,
		hasFeatured:    true,
		hasCategory:    true,
		preload:        []string{"Destination"},
	}
)
