package main

import (
	"log"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelbook/internal/config"
	"travelbook/internal/database"
	"travelbook/internal/domain/auth"
	"travelbook/internal/domain/catalog"
	"travelbook/internal/pkg/logger"
	"travelbook/internal/server"
)

// The demo catalog mixes the list encodings found in older
// databases: JSON arrays, index-keyed objects, comma and newline text.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("database connect failed", zap.Error(err))
	}
	if err := server.Migrate(db); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		lg.Info("cleaning catalog")
		for _, table := range []string{"favorites", "bookings", "events", "drivers", "cruises", "packages", "hotels", "destinations"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		if err := seedUsers(tx, lg); err != nil {
			return err
		}
		return seedCatalog(tx, lg)
	})
	if err != nil {
		lg.Fatal("seed failed", zap.Error(err))
	}
	lg.Info("seed completed")
}

func seedUsers(tx *gorm.DB, lg *zap.Logger) error {
	users := []struct {
		email, password, name string
		role                  auth.UserRole
	}{
		{"admin@travelbook.local", "admin12345", "Administrator", auth.RoleAdmin},
		{"amina@example.com", "customer123", "Amina Karimova", auth.RoleCustomer},
		{"tom@example.com", "customer123", "Tom Becker", auth.RoleCustomer},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		row := auth.User{Email: u.email, PasswordHash: string(hash), Role: u.role, Name: u.name}
		res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			lg.Info("user created", zap.String("email", u.email), zap.String("role", string(u.role)))
		}
	}
	return nil
}

func seedCatalog(tx *gorm.DB, lg *zap.Logger) error {
	destinations := []catalog.Destination{
		{
			Name: "Paris", Country: "France", Region: "Europe",
			Description:     "City of light.",
			Attractions:     `["Eiffel Tower","Louvre","Montmartre"]`,
			BestTimeToVisit: "April to June",
			Featured:        true,
		},
		{
			Name: "Almaty", Country: "Kazakhstan", Region: "Central Asia",
			Description:     "Mountains on the doorstep.",
			Attractions:     "Medeu, Shymbulak, Big Almaty Lake",
			BestTimeToVisit: "May to September",
		},
		{
			Name: "Zanzibar", Country: "Tanzania", Region: "Africa",
			Description: "Spice island beaches.",
			Attractions: "Stone Town\nNakupenda Beach\nJozani Forest",
			Featured:    true,
		},
	}
	if err := tx.Create(&destinations).Error; err != nil {
		return err
	}
	paris, almaty, zanzibar := destinations[0].ID, destinations[1].ID, destinations[2].ID

	hotels := []catalog.Hotel{
		{
			DestinationID: &paris, Name: "Hotel Lumiere", Address: "12 Rue de Rivoli",
			Stars: 4, PricePerNight: 210,
			Amenities: `["Wi-Fi","Breakfast","Air conditioning"]`,
			Images:    []string{"/static/uploads/demo/lumiere.jpg"},
			Featured:  true,
		},
		{
			DestinationID: &almaty, Name: "Tien Shan Lodge", Stars: 3, PricePerNight: 95,
			Amenities: `{"0":"Sauna","1":"Mountain view","2":"Parking"}`,
		},
		{
			DestinationID: &zanzibar, Name: "Coral Bay Resort", Stars: 5, PricePerNight: 340,
			Amenities: "Private beach\nPool\nSpa",
		},
	}
	if err := tx.Create(&hotels).Error; err != nil {
		return err
	}

	packages := []catalog.TourPackage{
		{
			DestinationID: &zanzibar, Name: "Spice and Sand", DurationDays: 7, Price: 1890,
			Inclusions: `{"stay":"6 nights lodging","food":"Daily breakfast","tour":"Spice farm tour"}`,
			Exclusions: "Flights, Visa fees",
			Featured:   true,
		},
		{
			DestinationID: &almaty, Name: "Tien Shan Trek", DurationDays: 5, Price: 980,
			Inclusions: `["Guide","Camping gear","Meals on trail"]`,
			Exclusions: `[]`,
		},
	}
	if err := tx.Create(&packages).Error; err != nil {
		return err
	}

	departure := time.Now().AddDate(0, 2, 0).Truncate(24 * time.Hour)
	cruises := []catalog.Cruise{{
		Name: "Mediterranean Loop", CruiseLine: "Azure Lines", DeparturePort: "Marseille",
		Route: "Marseille, Genoa, Naples, Valletta", DurationNights: 8, DepartureDate: &departure,
		Price: 2450, Amenities: "Pool, Theatre, Kids club", Featured: true,
	}}
	if err := tx.Create(&cruises).Error; err != nil {
		return err
	}

	drivers := []catalog.Driver{
		{
			DestinationID: &almaty, Name: "Ruslan Akhmetov", Phone: "+7 701 555 0101",
			VehicleType: "SUV", VehicleModel: "Toyota Land Cruiser", Seats: 6, DailyRate: 120,
			Languages: "Kazakh, Russian, English", ExperienceYears: 11, Available: true,
		},
		{
			DestinationID: &paris, Name: "Claire Martin", VehicleType: "Sedan", VehicleModel: "Peugeot 508",
			Seats: 3, DailyRate: 260, Languages: `["French","English"]`, ExperienceYears: 6, Available: true,
		},
	}
	if err := tx.Create(&drivers).Error; err != nil {
		return err
	}

	starts := time.Now().AddDate(0, 1, 0).Truncate(time.Hour)
	events := []catalog.Event{{
		DestinationID: &paris, Name: "Jazz on the Seine", Venue: "Quai de la Tournelle",
		Category: "music", StartsAt: starts, Price: 45,
		Highlights: "Live quartet\nRiver views", Featured: true,
	}}
	if err := tx.Create(&events).Error; err != nil {
		return err
	}

	lg.Info("catalog seeded",
		zap.Int("destinations", len(destinations)),
		zap.Int("hotels", len(hotels)),
		zap.Int("packages", len(packages)),
		zap.Int("cruises", len(cruises)),
		zap.Int("drivers", len(drivers)),
		zap.Int("events", len(events)),
	)
	return nil
}
