package catalog

import "time"

// Kind names a catalog resource. The value doubles as the booking item type.
type Kind string

const (
	KindDestination Kind = "destination"
	KindHotel       Kind = "hotel"
	KindPackage     Kind = "package"
	KindCruise      Kind = "cruise"
	KindDriver      Kind = "driver"
	KindEvent       Kind = "event"
)

// Kinds lists every catalog kind in display order.
var Kinds = []Kind{KindDestination, KindHotel, KindPackage, KindCruise, KindDriver, KindEvent}

// Base holds the columns shared by all catalog tables. Rows are soft deleted.
type Base struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (b *Base) GetID() int64 { return b.ID }

// List columns (Attractions, Amenities, Inclusions, Exclusions, Highlights,
// Languages) hold whatever encoding was written historically; they are only
// ever read through textlist.

type Destination struct {
	Base
	Name            string `gorm:"not null"`
	Country         string `gorm:"index"`
	Region          string
	Description     string `gorm:"type:text"`
	ImageURL        string
	Attractions     string `gorm:"type:text"`
	BestTimeToVisit string
	Featured        bool `gorm:"index"`
}

func (Destination) TableName() string { return "destinations" }

type Hotel struct {
	Base
	DestinationID *int64 `gorm:"index"`
	Name          string `gorm:"not null"`
	Address       string
	Description   string `gorm:"type:text"`
	Stars         int
	PricePerNight float64
	Amenities     string   `gorm:"type:text"`
	Images        []string `gorm:"serializer:json;type:text"`
	Featured      bool     `gorm:"index"`

	Destination *Destination `gorm:"foreignKey:DestinationID"`
}

func (Hotel) TableName() string { return "hotels" }

type TourPackage struct {
	Base
	DestinationID *int64 `gorm:"index"`
	Name          string `gorm:"not null"`
	Description   string `gorm:"type:text"`
	DurationDays  int
	Price         float64
	Inclusions    string `gorm:"type:text"`
	Exclusions    string `gorm:"type:text"`
	ImageURL      string
	Featured      bool `gorm:"index"`

	Destination *Destination `gorm:"foreignKey:DestinationID"`
}

func (TourPackage) TableName() string { return "packages" }

type Cruise struct {
	Base
	Name           string `gorm:"not null"`
	CruiseLine     string
	DeparturePort  string
	Route          string `gorm:"type:text"`
	DurationNights int
	DepartureDate  *time.Time
	Price          float64
	Amenities      string `gorm:"type:text"`
	ImageURL       string
	Featured       bool `gorm:"index"`
}

func (Cruise) TableName() string { return "cruises" }

type Driver struct {
	Base
	DestinationID   *int64 `gorm:"index"`
	Name            string `gorm:"not null"`
	Phone           string
	VehicleType     string
	VehicleModel    string
	Seats           int
	DailyRate       float64
	Languages       string `gorm:"type:text"`
	ExperienceYears int
	Available       bool `gorm:"default:true"`
	PhotoURL        string

	Destination *Destination `gorm:"foreignKey:DestinationID"`
}

func (Driver) TableName() string { return "drivers" }

type Event struct {
	Base
	DestinationID *int64 `gorm:"index"`
	Name          string `gorm:"not null"`
	Description   string `gorm:"type:text"`
	Venue         string
	Category      string `gorm:"index"`
	StartsAt      time.Time
	EndsAt        *time.Time
	Price         float64
	Highlights    string `gorm:"type:text"`
	ImageURL      string
	Featured      bool `gorm:"index"`

	Destination *Destination `gorm:"foreignKey:DestinationID"`
}

func (Event) TableName() string { return "events" }

// Models returns every catalog model for migrations.
func Models() []any {
	return []any{&Destination{}, &Hotel{}, &TourPackage{}, &Cruise{}, &Driver{}, &Event{}}
}
