package database

import (
	"showtix/internal/bookings"
	"showtix/internal/events"
	"showtix/internal/movies"
	"showtix/internal/promos"
	"showtix/internal/showtimes"
	"showtix/internal/users"
	"showtix/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&movies.Movie{},
		&events.Event{},
		&venues.Venue{},
		&venues.Screen{},
		&venues.ScreenRow{},
		&showtimes.Showtime{},
		&showtimes.PriceTier{},
		&showtimes.ShowtimeSeat{},
		&promos.PromoCode{},
		&bookings.Booking{},
	)
}
