package catalog

import (
	"time"

	"travelbook/internal/pkg/textlist"
)

// ---------- REQUESTS ----------
// List fields accept textarea text (one item per line) or a JSON array.

type DestinationRequest struct {
	Name            string         `json:"name" validate:"required,max=200"`
	Country         string         `json:"country" validate:"required,max=100"`
	Region          string         `json:"region" validate:"max=100"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"image_url" validate:"max=500"`
	Attractions     textlist.Input `json:"attractions"`
	BestTimeToVisit string         `json:"best_time_to_visit" validate:"max=100"`
	Featured        bool           `json:"featured"`
}

type HotelRequest struct {
	DestinationID *int64         `json:"destination_id" validate:"omitempty,gt=0"`
	Name          string         `json:"name" validate:"required,max=200"`
	Address       string         `json:"address" validate:"max=300"`
	Description   string         `json:"description"`
	Stars         int            `json:"stars" validate:"gte=0,lte=5"`
	PricePerNight float64        `json:"price_per_night" validate:"gte=0"`
	Amenities     textlist.Input `json:"amenities"`
	Images        []string       `json:"images" validate:"omitempty,dive,required,max=500"`
	Featured      bool           `json:"featured"`
}

type PackageRequest struct {
	DestinationID *int64         `json:"destination_id" validate:"omitempty,gt=0"`
	Name          string         `json:"name" validate:"required,max=200"`
	Description   string         `json:"description"`
	DurationDays  int            `json:"duration_days" validate:"gte=1"`
	Price         float64        `json:"price" validate:"gte=0"`
	Inclusions    textlist.Input `json:"inclusions"`
	Exclusions    textlist.Input `json:"exclusions"`
	ImageURL      string         `json:"image_url" validate:"max=500"`
	Featured      bool           `json:"featured"`
}

type CruiseRequest struct {
	Name           string         `json:"name" validate:"required,max=200"`
	CruiseLine     string         `json:"cruise_line" validate:"max=120"`
	DeparturePort  string         `json:"departure_port" validate:"max=120"`
	Route          string         `json:"route"`
	DurationNights int            `json:"duration_nights" validate:"gte=1"`
	DepartureDate  *time.Time     `json:"departure_date"`
	Price          float64        `json:"price" validate:"gte=0"`
	Amenities      textlist.Input `json:"amenities"`
	ImageURL       string         `json:"image_url" validate:"max=500"`
	Featured       bool           `json:"featured"`
}

type DriverRequest struct {
	DestinationID   *int64         `json:"destination_id" validate:"omitempty,gt=0"`
	Name            string         `json:"name" validate:"required,max=120"`
	Phone           string         `json:"phone" validate:"max=32"`
	VehicleType     string         `json:"vehicle_type" validate:"max=60"`
	VehicleModel    string         `json:"vehicle_model" validate:"max=120"`
	Seats           int            `json:"seats" validate:"gte=1,lte=60"`
	DailyRate       float64        `json:"daily_rate" validate:"gte=0"`
	Languages       textlist.Input `json:"languages"`
	ExperienceYears int            `json:"experience_years" validate:"gte=0,lte=70"`
	Available       *bool          `json:"available"`
	PhotoURL        string         `json:"photo_url" validate:"max=500"`
}

type EventRequest struct {
	DestinationID *int64         `json:"destination_id" validate:"omitempty,gt=0"`
	Name          string         `json:"name" validate:"required,max=200"`
	Description   string         `json:"description"`
	Venue         string         `json:"venue" validate:"max=200"`
	Category      string         `json:"category" validate:"max=60"`
	StartsAt      time.Time      `json:"starts_at" validate:"required"`
	EndsAt        *time.Time     `json:"ends_at" validate:"omitempty,gtfield=StartsAt"`
	Price         float64        `json:"price" validate:"gte=0"`
	Highlights    textlist.Input `json:"highlights"`
	ImageURL      string         `json:"image_url" validate:"max=500"`
	Featured      bool           `json:"featured"`
}

// ---------- VIEWS ----------
// Each parsed list is also returned as textarea text (…_text) for edit forms.

type DestinationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DestinationView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Country         string    `json:"country"`
	Region          string    `json:"region,omitempty"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Attractions     []string  `json:"attractions"`
	AttractionsText string    `json:"attractions_text"`
	BestTimeToVisit string    `json:"best_time_to_visit,omitempty"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type HotelView struct {
	ID            int64           `json:"id"`
	Destination   *DestinationRef `json:"destination,omitempty"`
	Name          string          `json:"name"`
	Address       string          `json:"address,omitempty"`
	Description   string          `json:"description,omitempty"`
	Stars         int             `json:"stars"`
	PricePerNight float64         `json:"price_per_night"`
	Amenities     []string        `json:"amenities"`
	AmenitiesText string          `json:"amenities_text"`
	Images        []string        `json:"images"`
	Featured      bool            `json:"featured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PackageView struct {
	ID             int64           `json:"id"`
	Destination    *DestinationRef `json:"destination,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	DurationDays   int             `json:"duration_days"`
	Price          float64         `json:"price"`
	Inclusions     []string        `json:"inclusions"`
	InclusionsText string          `json:"inclusions_text"`
	Exclusions     []string        `json:"exclusions"`
	ExclusionsText string          `json:"exclusions_text"`
	ImageURL       string          `json:"image_url,omitempty"`
	Featured       bool            `json:"featured"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CruiseView struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	CruiseLine     string     `json:"cruise_line,omitempty"`
	DeparturePort  string     `json:"departure_port,omitempty"`
	Route          string     `json:"route,omitempty"`
	DurationNights int        `json:"duration_nights"`
	DepartureDate  *time.Time `json:"departure_date,omitempty"`
	Price          float64    `json:"price"`
	Amenities      []string   `json:"amenities"`
	AmenitiesText  string     `json:"amenities_text"`
	ImageURL       string     `json:"image_url,omitempty"`
	Featured       bool       `json:"featured"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type DriverView struct {
	ID              int64           `json:"id"`
	Destination     *DestinationRef `json:"destination,omitempty"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	VehicleType     string          `json:"vehicle_type,omitempty"`
	VehicleModel    string          `json:"vehicle_model,omitempty"`
	Seats           int             `json:"seats"`
	DailyRate       float64         `json:"daily_rate"`
	Languages       []string        `json:"languages"`
	LanguagesText   string          `json:"languages_text"`
	ExperienceYears int             `json:"experience_years"`
	Available       bool            `json:"available"`
	PhotoURL        string          `json:"photo_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type EventView struct {
	ID             int64           `json:"id"`
	Destination    *DestinationRef `json:"destination,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Venue          string          `json:"venue,omitempty"`
	Category       string          `json:"category,omitempty"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         *time.Time      `json:"ends_at,omitempty"`
	Price          float64         `json:"price"`
	Highlights     []string        `json:"highlights"`
	HighlightsText string          `json:"highlights_text"`
	ImageURL       string          `json:"image_url,omitempty"`
	Featured       bool            `json:"featured"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BookableItem is what the booking module needs to price a booking.
type BookableItem struct {
	Kind      Kind
	ID        int64
	Name      string
	UnitPrice float64
	// PricedPer is "night", "day" or "person".
	PricedPer string
}

func destinationRef(d *Destination) *DestinationRef {
	if d == nil || d.DeletedAt != nil {
		return nil
	}
	return &DestinationRef{ID: d.ID, Name: d.Name}
}
