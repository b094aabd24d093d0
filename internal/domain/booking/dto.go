package booking

import "travelbook/internal/domain/catalog"

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ItemType     catalog.Kind `json:"item_type" validate:"required,oneof=hotel package cruise driver event"`
	ItemID       int64        `json:"item_id" validate:"required,gt=0"`
	StartDate    string       `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string       `json:"end_date" validate:"required,datetime=2006-01-02"`
	Guests       int          `json:"guests" validate:"required,gte=1,lte=50"`
	ContactName  string       `json:"contact_name" validate:"required,max=120"`
	ContactEmail string       `json:"contact_email" validate:"required,email"`
	ContactPhone string       `json:"contact_phone" validate:"max=32"`
	Notes        string       `json:"notes" validate:"max=2000"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
