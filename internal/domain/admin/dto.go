package admin

import (
	"time"

	"travelbook/internal/domain/catalog"
)

type Summary struct {
	Catalog          map[catalog.Kind]int64 `json:"catalog"`
	Users            int64                  `json:"users"`
	BookingsByStatus map[string]int64       `json:"bookings_by_status"`
	TotalBookings    int64                  `json:"total_bookings"`
	Revenue          float64                `json:"revenue"`
	OpenInquiries    int64                  `json:"open_inquiries"`
}

// MonthlyPoint is one month of bookings. Month is "YYYY-MM".
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type TopItem struct {
	ItemType catalog.Kind `json:"item_type"`
	ItemID   int64        `json:"item_id"`
	ItemName string       `json:"item_name"`
	Bookings int64        `json:"bookings"`
	Revenue  float64      `json:"revenue"`
}

// bookingRow is the slice of a booking the monthly report needs.
type bookingRow struct {
	CreatedAt  time.Time
	Status     string
	TotalPrice float64
}
