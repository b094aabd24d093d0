package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelbook/internal/pkg/textlist"
)

// lists holds the textlist presets bound to the service's observer.
type lists struct {
	amenities   textlist.Options
	inclusions  textlist.Options
	languages   textlist.Options
	attractions textlist.Options
}

func newLists(obs textlist.Observer) lists {
	return lists{
		amenities:   textlist.Amenities.WithObserver(obs),
		inclusions:  textlist.Inclusions.WithObserver(obs),
		languages:   textlist.Languages.WithObserver(obs),
		attractions: textlist.Attractions.WithObserver(obs),
	}
}

// field returns the preset for one column, keeping the column name in events.
func field(opts textlist.Options, name string) textlist.Options {
	opts.Field = name
	return opts
}

// Resource implements list/get/create/update/delete for one catalog kind.
// T is the entity, R the request body and V the public view.
type Resource[T any, R any, V any] struct {
	kind         Kind
	repo         *Repository[T]
	destinations *Repository[Destination]

	apply         func(req *R, item *T)
	view          func(item *T) V
	destinationOf func(req *R) *int64
}

func (r *Resource[T, R, V]) Kind() Kind { return r.kind }

func (r *Resource[T, R, V]) List(ctx context.Context, f Filters) ([]V, int64, error) {
	items, total, err := r.repo.GetAll(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.kind, err)
	}
	out := make([]V, 0, len(items))
	for i := range items {
		out = append(out, r.view(&items[i]))
	}
	return out, total, nil
}

func (r *Resource[T, R, V]) Get(ctx context.Context, id int64) (*V, error) {
	item, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := r.view(item)
	return &v, nil
}

func (r *Resource[T, R, V]) Create(ctx context.Context, req *R) (*V, error) {
	if err := r.checkDestination(ctx, req); err != nil {
		return nil, err
	}

	item := new(T)
	r.apply(req, item)
	if err := r.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.kind, err)
	}
	return r.reload(ctx, item)
}

func (r *Resource[T, R, V]) Update(ctx context.Context, id int64, req *R) (*V, error) {
	item, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.checkDestination(ctx, req); err != nil {
		return nil, err
	}

	r.apply(req, item)
	if err := r.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update %s: %w", r.kind, err)
	}
	return r.reload(ctx, item)
}

func (r *Resource[T, R, V]) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}

// reload reads the row back so relations and timestamps are current.
func (r *Resource[T, R, V]) reload(ctx context.Context, item *T) (*V, error) {
	id := any(item).(interface{ GetID() int64 }).GetID()
	return r.Get(ctx, id)
}

func (r *Resource[T, R, V]) checkDestination(ctx context.Context, req *R) error {
	if r.destinationOf == nil {
		return nil
	}
	id := r.destinationOf(req)
	if id == nil {
		return nil
	}
	ok, err := r.destinations.Exists(ctx, *id)
	if err != nil {
		return fmt.Errorf("check destination: %w", err)
	}
	if !ok {
		return ErrUnknownDestination
	}
	return nil
}

// Service groups the catalog resources.
type Service struct {
	Destinations *Resource[Destination, DestinationRequest, DestinationView]
	Hotels       *Resource[Hotel, HotelRequest, HotelView]
	Packages     *Resource[TourPackage, PackageRequest, PackageView]
	Cruises      *Resource[Cruise, CruiseRequest, CruiseView]
	Drivers      *Resource[Driver, DriverRequest, DriverView]
	Events       *Resource[Event, EventRequest, EventView]

	counters map[Kind]func(context.Context) (int64, error)
	exists   map[Kind]func(context.Context, int64) (bool, error)
}

// NewService wires the repositories. Lists read through non-canonical
// encodings are logged at debug level on log; log may be nil.
func NewService(db *gorm.DB, log *zap.Logger) *Service {
	l := newLists(textlist.ZapObserver(log))

	destinations := newRepository[Destination](db, destinationTable)
	hotels := newRepository[Hotel](db, hotelTable)
	packages := newRepository[TourPackage](db, packageTable)
	cruises := newRepository[Cruise](db, cruiseTable)
	drivers := newRepository[Driver](db, driverTable)
	events := newRepository[Event](db, eventTable)

	s := &Service{
		Destinations: &Resource[Destination, DestinationRequest, DestinationView]{
			kind:  KindDestination,
			repo:  destinations,
			apply: applyDestination,
			view:  l.destinationView,
		},
		Hotels: &Resource[Hotel, HotelRequest, HotelView]{
			kind:          KindHotel,
			repo:          hotels,
			destinations:  destinations,
			apply:         applyHotel,
			view:          l.hotelView,
			destinationOf: func(r *HotelRequest) *int64 { return r.DestinationID },
		},
		Packages: &Resource[TourPackage, PackageRequest, PackageView]{
			kind:          KindPackage,
			repo:          packages,
			destinations:  destinations,
			apply:         applyPackage,
			view:          l.packageView,
			destinationOf: func(r *PackageRequest) *int64 { return r.DestinationID },
		},
		Cruises: &Resource[Cruise, CruiseRequest, CruiseView]{
			kind:  KindCruise,
			repo:  cruises,
			apply: applyCruise,
			view:  l.cruiseView,
		},
		Drivers: &Resource[Driver, DriverRequest, DriverView]{
			kind:          KindDriver,
			repo:          drivers,
			destinations:  destinations,
			apply:         applyDriver,
			view:          l.driverView,
			destinationOf: func(r *DriverRequest) *int64 { return r.DestinationID },
		},
		Events: &Resource[Event, EventRequest, EventView]{
			kind:          KindEvent,
			repo:          events,
			destinations:  destinations,
			apply:         applyEvent,
			view:          l.eventView,
			destinationOf: func(r *EventRequest) *int64 { return r.DestinationID },
		},
	}

	s.counters = map[Kind]func(context.Context) (int64, error){
		KindDestination: destinations.Count,
		KindHotel:       hotels.Count,
		KindPackage:     packages.Count,
		KindCruise:      cruises.Count,
		KindDriver:      drivers.Count,
		KindEvent:       events.Count,
	}
	s.exists = map[Kind]func(context.Context, int64) (bool, error){
		KindDestination: destinations.Exists,
		KindHotel:       hotels.Exists,
		KindPackage:     packages.Exists,
		KindCruise:      cruises.Exists,
		KindDriver:      drivers.Exists,
		KindEvent:       events.Exists,
	}
	return s
}

// Exists reports whether a live item of the given kind exists.
func (s *Service) Exists(ctx context.Context, kind Kind, id int64) (bool, error) {
	fn, ok := s.exists[kind]
	if !ok {
		return false, ErrUnknownKind
	}
	return fn(ctx, id)
}

// Bookable resolves the name and unit price of a bookable item.
func (s *Service) Bookable(ctx context.Context, kind Kind, id int64) (*BookableItem, error) {
	switch kind {
	case KindHotel:
		h, err := s.Hotels.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &BookableItem{Kind: kind, ID: h.ID, Name: h.Name, UnitPrice: h.PricePerNight, PricedPer: "night"}, nil
	case KindPackage:
		p, err := s.Packages.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &BookableItem{Kind: kind, ID: p.ID, Name: p.Name, UnitPrice: p.Price, PricedPer: "person"}, nil
	case KindCruise:
		c, err := s.Cruises.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &BookableItem{Kind: kind, ID: c.ID, Name: c.Name, UnitPrice: c.Price, PricedPer: "person"}, nil
	case KindDriver:
		d, err := s.Drivers.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !d.Available {
			return nil, ErrNotBookable
		}
		return &BookableItem{Kind: kind, ID: d.ID, Name: d.Name, UnitPrice: d.DailyRate, PricedPer: "day"}, nil
	case KindEvent:
		e, err := s.Events.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &BookableItem{Kind: kind, ID: e.ID, Name: e.Name, UnitPrice: e.Price, PricedPer: "person"}, nil
	case KindDestination:
		return nil, ErrNotBookable
	default:
		return nil, ErrUnknownKind
	}
}

// Counts returns the number of live rows per kind.
func (s *Service) Counts(ctx context.Context) (map[Kind]int64, error) {
	out := make(map[Kind]int64, len(s.counters))
	for _, kind := range Kinds {
		n, err := s.counters[kind](ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", kind, err)
		}
		out[kind] = n
	}
	return out, nil
}

// ---------- request → entity ----------

func applyDestination(r *DestinationRequest, d *Destination) {
	d.Name = r.Name
	d.Country = r.Country
	d.Region = r.Region
	d.Description = r.Description
	d.ImageURL = r.ImageURL
	d.Attractions = r.Attractions.Encode()
	d.BestTimeToVisit = r.BestTimeToVisit
	d.Featured = r.Featured
}

func applyHotel(r *HotelRequest, h *Hotel) {
	h.DestinationID = r.DestinationID
	h.Destination = nil
	h.Name = r.Name
	h.Address = r.Address
	h.Description = r.Description
	h.Stars = r.Stars
	h.PricePerNight = r.PricePerNight
	h.Amenities = r.Amenities.Encode()
	h.Images = textlist.Clean(r.Images)
	h.Featured = r.Featured
}

func applyPackage(r *PackageRequest, p *TourPackage) {
	p.DestinationID = r.DestinationID
	p.Destination = nil
	p.Name = r.Name
	p.Description = r.Description
	p.DurationDays = r.DurationDays
	p.Price = r.Price
	p.Inclusions = r.Inclusions.Encode()
	p.Exclusions = r.Exclusions.Encode()
	p.ImageURL = r.ImageURL
	p.Featured = r.Featured
}

func applyCruise(r *CruiseRequest, c *Cruise) {
	c.Name = r.Name
	c.CruiseLine = r.CruiseLine
	c.DeparturePort = r.DeparturePort
	c.Route = r.Route
	c.DurationNights = r.DurationNights
	c.DepartureDate = r.DepartureDate
	c.Price = r.Price
	c.Amenities = r.Amenities.Encode()
	c.ImageURL = r.ImageURL
	c.Featured = r.Featured
}

func applyDriver(r *DriverRequest, d *Driver) {
	d.DestinationID = r.DestinationID
	d.Destination = nil
	d.Name = r.Name
	d.Phone = r.Phone
	d.VehicleType = r.VehicleType
	d.VehicleModel = r.VehicleModel
	d.Seats = r.Seats
	d.DailyRate = r.DailyRate
	d.Languages = r.Languages.Encode()
	d.ExperienceYears = r.ExperienceYears
	d.Available = r.Available == nil || *r.Available
	d.PhotoURL = r.PhotoURL
}

func applyEvent(r *EventRequest, e *Event) {
	e.DestinationID = r.DestinationID
	e.Destination = nil
	e.Name = r.Name
	e.Description = r.Description
	e.Venue = r.Venue
	e.Category = r.Category
	e.StartsAt = r.StartsAt
	e.EndsAt = r.EndsAt
	e.Price = r.Price
	e.Highlights = r.Highlights.Encode()
	e.ImageURL = r.ImageURL
	e.Featured = r.Featured
}

// ---------- entity → view ----------

func (l lists) destinationView(d *Destination) DestinationView {
	attractions := textlist.ParseWith(d.Attractions, l.attractions)
	return DestinationView{
		ID:              d.ID,
		Name:            d.Name,
		Country:         d.Country,
		Region:          d.Region,
		Description:     d.Description,
		ImageURL:        d.ImageURL,
		Attractions:     attractions,
		AttractionsText: textlist.Serialize(attractions),
		BestTimeToVisit: d.BestTimeToVisit,
		Featured:        d.Featured,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (l lists) hotelView(h *Hotel) HotelView {
	amenities := textlist.ParseWith(h.Amenities, l.amenities)
	images := h.Images
	if images == nil {
		images = []string{}
	}
	return HotelView{
		ID:            h.ID,
		Destination:   destinationRef(h.Destination),
		Name:          h.Name,
		Address:       h.Address,
		Description:   h.Description,
		Stars:         h.Stars,
		PricePerNight: h.PricePerNight,
		Amenities:     amenities,
		AmenitiesText: textlist.Serialize(amenities),
		Images:        images,
		Featured:      h.Featured,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func (l lists) packageView(p *TourPackage) PackageView {
	inclusions := textlist.ParseWith(p.Inclusions, field(l.inclusions, "inclusions"))
	exclusions := textlist.ParseWith(p.Exclusions, field(l.inclusions, "exclusions"))
	return PackageView{
		ID:             p.ID,
		Destination:    destinationRef(p.Destination),
		Name:           p.Name,
		Description:    p.Description,
		DurationDays:   p.DurationDays,
		Price:          p.Price,
		Inclusions:     inclusions,
		InclusionsText: textlist.Serialize(inclusions),
		Exclusions:     exclusions,
		ExclusionsText: textlist.Serialize(exclusions),
		ImageURL:       p.ImageURL,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (l lists) cruiseView(c *Cruise) CruiseView {
	amenities := textlist.ParseWith(c.Amenities, l.amenities)
	return CruiseView{
		ID:             c.ID,
		Name:           c.Name,
		CruiseLine:     c.CruiseLine,
		DeparturePort:  c.DeparturePort,
		Route:          c.Route,
		DurationNights: c.DurationNights,
		DepartureDate:  c.DepartureDate,
		Price:          c.Price,
		Amenities:      amenities,
		AmenitiesText:  textlist.Serialize(amenities),
		ImageURL:       c.ImageURL,
		Featured:       c.Featured,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (l lists) driverView(d *Driver) DriverView {
	languages := textlist.ParseWith(d.Languages, l.languages)
	return DriverView{
		ID:              d.ID,
		Destination:     destinationRef(d.Destination),
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleType:     d.VehicleType,
		VehicleModel:    d.VehicleModel,
		Seats:           d.Seats,
		DailyRate:       d.DailyRate,
		Languages:       languages,
		LanguagesText:   textlist.Serialize(languages),
		ExperienceYears: d.ExperienceYears,
		Available:       d.Available,
		PhotoURL:        d.PhotoURL,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (l lists) eventView(e *Event) EventView {
	highlights := textlist.ParseWith(e.Highlights, field(l.inclusions, "highlights"))
	return EventView{
		ID:             e.ID,
		Destination:    destinationRef(e.Destination),
		Name:           e.Name,
		Description:    e.Description,
		Venue:          e.Venue,
		Category:       e.Category,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		Price:          e.Price,
		Highlights:     highlights,
		HighlightsText: textlist.Serialize(highlights),
		ImageURL:       e.ImageURL,
		Featured:       e.Featured,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
