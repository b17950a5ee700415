package constants

import "time"

// Redis cache keys and TTLs.
// Pattern: showtix:{module}:{operation}:{identifier}

const CACHE_PREFIX = "showtix"

// Catalog data changes rarely; seat maps are contended and must stay fresh.
const (
	TTL_CATALOG_DETAIL = 2 * time.Hour
	TTL_CATALOG_LIST   = 15 * time.Minute
	TTL_VENUE_LAYOUT   = 4 * time.Hour
	TTL_SHOWTIME       = 5 * time.Minute
	TTL_SEAT_MAP       = 30 * time.Second
)

const (
	CACHE_KEY_MOVIE_DETAIL    = CACHE_PREFIX + ":movies:detail:uuid:"    // + movie-id
	CACHE_KEY_MOVIES_ACTIVE   = CACHE_PREFIX + ":movies:active"          // active movie list
	CACHE_KEY_EVENT_DETAIL    = CACHE_PREFIX + ":events:detail:uuid:"    // + event-id
	CACHE_KEY_EVENTS_ACTIVE   = CACHE_PREFIX + ":events:active"          // active event list
	CACHE_KEY_VENUE_DETAIL    = CACHE_PREFIX + ":venues:detail:uuid:"    // + venue-id
	CACHE_KEY_SCREEN_LAYOUT   = CACHE_PREFIX + ":venues:layout:uuid:"    // + screen-id
	CACHE_KEY_SHOWTIME_DETAIL = CACHE_PREFIX + ":showtimes:detail:uuid:" // + showtime-id
	CACHE_KEY_SHOWTIME_SEATS  = CACHE_PREFIX + ":showtimes:seats:uuid:"  // + showtime-id
)

// SeatMapKey returns the seat-map cache key for a showtime.
func SeatMapKey(showtimeID string) string {
	return CACHE_KEY_SHOWTIME_SEATS + showtimeID
}

// ShowtimeKey returns the detail cache key for a showtime.
func ShowtimeKey(showtimeID string) string {
	return CACHE_KEY_SHOWTIME_DETAIL + showtimeID
}
