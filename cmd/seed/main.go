package main

import (
	"fmt"
	"log"
	"time"

	"showtix/internal/events"
	"showtix/internal/movies"
	"showtix/internal/promos"
	"showtix/internal/shared/config"
	"showtix/internal/shared/database"
	"showtix/internal/showtimes"
	"showtix/internal/users"
	"showtix/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting ShowTix Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"showtime_seats",
		"bookings",
		"showtime_price_tiers",
		"showtimes",
		"promo_codes",
		"screen_rows",
		"screens",
		"venues",
		"events",
		"movies",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds users, a venue with one screen, catalog items, a showtime
// with price tiers, and two promo codes
func (s *Seeder) SeedAll() error {
	admin, organizer, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	screen, venue, err := s.seedVenue(organizer.ID)
	if err != nil {
		return fmt.Errorf("failed to seed venue: %w", err)
	}

	movie, event, err := s.seedCatalog(admin.ID, organizer.ID)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	if err := s.seedShowtimes(venue, screen, movie, event, admin.ID); err != nil {
		return fmt.Errorf("failed to seed showtimes: %w", err)
	}

	if err := s.seedPromos(); err != nil {
		return fmt.Errorf("failed to seed promos: %w", err)
	}

	return nil
}

func (s *Seeder) seedUsers() (*users.User, *users.User, error) {
	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return string(hashed)
	}

	admin := &users.User{
		ID:         uuid.New(),
		FirstName:  "Ava",
		LastName:   "Admin",
		Email:      "admin@showtix.io",
		Password:   hash("Admin@123"),
		Role:       users.RoleAdmin,
		IsApproved: true,
	}
	organizer := &users.User{
		ID:         uuid.New(),
		FirstName:  "Omar",
		LastName:   "Organizer",
		Email:      "organizer@showtix.io",
		Password:   hash("Organizer@123"),
		Role:       users.RoleOrganizer,
		IsApproved: true,
	}
	customer := &users.User{
		ID:         uuid.New(),
		FirstName:  "Casey",
		LastName:   "Customer",
		Email:      "customer@showtix.io",
		Password:   hash("Customer@123"),
		Role:       users.RoleUser,
		IsApproved: true,
	}

	for _, user := range []*users.User{admin, organizer, customer} {
		if err := s.db.PostgreSQL.Create(user).Error; err != nil {
			return nil, nil, err
		}
		fmt.Printf("  Created user: %s (%s)\n", user.Email, user.Role)
	}

	return admin, organizer, nil
}

func (s *Seeder) seedVenue(organizerID uuid.UUID) (*venues.Screen, *venues.Venue, error) {
	venue := &venues.Venue{
		ID:          uuid.New(),
		Name:        "Grand Palace Cinema",
		City:        "Mumbai",
		Address:     "12 Marine Drive",
		OrganizerID: organizerID,
		IsActive:    true,
	}
	if err := s.db.PostgreSQL.Create(venue).Error; err != nil {
		return nil, nil, err
	}

	screen := &venues.Screen{
		ID:         uuid.New(),
		VenueID:    venue.ID,
		Name:       "Screen 1",
		TotalSeats: 46,
		Rows: []venues.ScreenRow{
			{RowLabel: "A", SeatType: "Normal", SeatCount: 12, Position: 0},
			{RowLabel: "B", SeatType: "Normal", SeatCount: 12, Position: 1},
			{RowLabel: "C", SeatType: "Premium", SeatCount: 12, Position: 2},
			{RowLabel: "D", SeatType: "VIP", SeatCount: 10, Position: 3},
		},
	}
	if err := s.db.PostgreSQL.Create(screen).Error; err != nil {
		return nil, nil, err
	}
	fmt.Printf("  Created venue %q with screen %q (%d seats)\n", venue.Name, screen.Name, screen.TotalSeats)

	return screen, venue, nil
}

func (s *Seeder) seedCatalog(adminID, organizerID uuid.UUID) (*movies.Movie, *events.Event, error) {
	movie := &movies.Movie{
		ID:              uuid.New(),
		Title:           "The Last Projection",
		Description:     "A projectionist discovers the reels in his booth predict the future.",
		DurationMinutes: 128,
		Language:        "English",
		Genre:           "Thriller",
		IsActive:        true,
		CreatedBy:       adminID,
	}
	if err := s.db.PostgreSQL.Create(movie).Error; err != nil {
		return nil, nil, err
	}
	fmt.Printf("  Created movie: %s\n", movie.Title)

	event := &events.Event{
		ID:              uuid.New(),
		Title:           "Stand-up Night Live",
		Description:     "An evening of stand-up comedy with a rotating lineup.",
		DurationMinutes: 90,
		Category:        "Comedy",
		Language:        "English",
		IsActive:        true,
		OrganizerID:     organizerID,
	}
	if err := s.db.PostgreSQL.Create(event).Error; err != nil {
		return nil, nil, err
	}
	fmt.Printf("  Created event: %s\n", event.Title)

	return movie, event, nil
}

func (s *Seeder) seedShowtimes(venue *venues.Venue, screen *venues.Screen, movie *movies.Movie, event *events.Event, createdBy uuid.UUID) error {
	movieStart := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	movieShowtime := &showtimes.Showtime{
		ID:         uuid.New(),
		VenueID:    venue.ID,
		ScreenID:   screen.ID,
		ItemType:   showtimes.ItemTypeMovie,
		MovieID:    &movie.ID,
		StartTime:  movieStart,
		EndTime:    movieStart.Add(time.Duration(movie.DurationMinutes)*time.Minute + 15*time.Minute),
		TotalSeats: screen.TotalSeats,
		IsActive:   true,
		CreatedBy:  createdBy,
		PriceTiers: []showtimes.PriceTier{
			{SeatType: "Normal", Price: 200},
			{SeatType: "Premium", Price: 350},
			{SeatType: "VIP", Price: 500},
		},
	}
	if err := s.db.PostgreSQL.Create(movieShowtime).Error; err != nil {
		return err
	}
	fmt.Printf("  Created movie showtime at %s\n", movieStart.Format(time.RFC3339))

	eventStart := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	eventShowtime := &showtimes.Showtime{
		ID:         uuid.New(),
		VenueID:    venue.ID,
		ScreenID:   screen.ID,
		ItemType:   showtimes.ItemTypeEvent,
		EventID:    &event.ID,
		StartTime:  eventStart,
		EndTime:    eventStart.Add(time.Duration(event.DurationMinutes)*time.Minute + 15*time.Minute),
		TotalSeats: screen.TotalSeats,
		IsActive:   true,
		CreatedBy:  createdBy,
		PriceTiers: []showtimes.PriceTier{
			{SeatType: "Normal", Price: 300},
			{SeatType: "VIP", Price: 750},
		},
	}
	if err := s.db.PostgreSQL.Create(eventShowtime).Error; err != nil {
		return err
	}
	fmt.Printf("  Created event showtime at %s\n", eventStart.Format(time.RFC3339))

	return nil
}

func (s *Seeder) seedPromos() error {
	maxDiscount := 100.0
	maxUses := 500
	validUntil := time.Now().Add(90 * 24 * time.Hour)

	save20 := &promos.PromoCode{
		ID:                uuid.New(),
		Code:              "SAVE20",
		DiscountType:      promos.DiscountTypePercentage,
		DiscountValue:     20,
		MinPurchaseAmount: 500,
		MaxDiscountAmount: &maxDiscount,
		ValidUntil:        &validUntil,
		MaxUses:           &maxUses,
		IsActive:          true,
	}
	flat50 := &promos.PromoCode{
		ID:                uuid.New(),
		Code:              "FLAT50",
		DiscountType:      promos.DiscountTypeFixed,
		DiscountValue:     50,
		MinPurchaseAmount: 0,
		ValidUntil:        &validUntil,
		IsActive:          true,
	}

	for _, promo := range []*promos.PromoCode{save20, flat50} {
		if err := s.db.PostgreSQL.Create(promo).Error; err != nil {
			return err
		}
		fmt.Printf("  Created promo code: %s\n", promo.Code)
	}

	return nil
}
