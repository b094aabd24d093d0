package booking

import (
	"time"

	"travelbook/internal/domain/catalog"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// transitions lists the statuses reachable from each status.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// Booking snapshots the item name and price at the time it was made so later
// catalog edits do not change what the customer agreed to pay.
type Booking struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	UserID       int64        `json:"user_id" gorm:"index;not null"`
	ItemType     catalog.Kind `json:"item_type" gorm:"index;not null"`
	ItemID       int64        `json:"item_id" gorm:"index;not null"`
	ItemName     string       `json:"item_name"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	Guests       int          `json:"guests"`
	Units        int          `json:"units"`
	UnitPrice    float64      `json:"unit_price"`
	TotalPrice   float64      `json:"total_price"`
	Status       Status       `json:"status" gorm:"index;not null;default:pending"`
	ContactName  string       `json:"contact_name"`
	ContactEmail string       `json:"contact_email"`
	ContactPhone string       `json:"contact_phone,omitempty"`
	Notes        string       `json:"notes,omitempty" gorm:"type:text"`
	CancelledAt  *time.Time   `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
