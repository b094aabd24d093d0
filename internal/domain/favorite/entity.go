package favorite

import (
	"time"

	"travelbook/internal/domain/catalog"
)

// Favorite is a catalog item a user saved to their wishlist.
type Favorite struct {
	ID        int64        `json:"id" gorm:"primaryKey"`
	UserID    int64        `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_item"`
	ItemType  catalog.Kind `json:"item_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_favorites_user_item"`
	ItemID    int64        `json:"item_id" gorm:"not null;uniqueIndex:idx_favorites_user_item"`
	CreatedAt time.Time    `json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
