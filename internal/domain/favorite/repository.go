package favorite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelbook/internal/domain/catalog"
)

type Repository interface {
	Add(ctx context.Context, f *Favorite) error
	Remove(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) error
	Exists(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, kind catalog.Kind, limit, offset int) ([]Favorite, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Add inserts f and returns ErrAlreadyFavorite when the user already saved
// the item.
func (r *repository) Add(ctx context.Context, f *Favorite) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyFavorite
	}
	return nil
}

func (r *repository) Remove(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, kind, itemID).
		Delete(&Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, kind, itemID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) ListByUser(ctx context.Context, userID int64, kind catalog.Kind, limit, offset int) ([]Favorite, int64, error) {
	q := r.db.WithContext(ctx).Model(&Favorite{}).Where("user_id = ?", userID)
	if kind != "" {
		q = q.Where("item_type = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Favorite
	err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}
