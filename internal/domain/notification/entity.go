package notification

import "time"

type Type string

const (
	TypeBookingConfirmed Type = "booking_confirmed"
	TypeBookingCancelled Type = "booking_cancelled"
	TypeBookingCompleted Type = "booking_completed"
	TypeInquiryReply     Type = "inquiry_reply"
)

// Data links a notification to the entity it is about.
type Data struct {
	BookingID      *int64 `json:"booking_id,omitempty"`
	InquiryID      *int64 `json:"inquiry_id,omitempty"`
	ItemName       string `json:"item_name,omitempty"`
	MessagePreview string `json:"message_preview,omitempty"`
}

// Notification is an in-app notice for one user.
type Notification struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	UserID    int64      `json:"user_id" gorm:"index:idx_notifications_user_read;not null"`
	Type      Type       `json:"type" gorm:"type:varchar(40);not null"`
	Title     string     `json:"title" gorm:"not null"`
	Body      string     `json:"body,omitempty" gorm:"type:text"`
	Data      Data       `json:"data" gorm:"serializer:json;type:text"`
	IsRead    bool       `json:"is_read" gorm:"index:idx_notifications_user_read;not null;default:false"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }
