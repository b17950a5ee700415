package showtimes

import (
	"time"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemTypeMovie ItemType = "MOVIE"
	ItemTypeEvent ItemType = "EVENT"
)

// Showtime schedules a movie or a live event on one screen. Exactly one of
// MovieID / EventID is set, discriminated by ItemType.
type Showtime struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID    uuid.UUID  `json:"venue_id" gorm:"type:uuid;not null;index"`
	ScreenID   uuid.UUID  `json:"screen_id" gorm:"type:uuid;not null;index"`
	ItemType   ItemType   `json:"item_type" gorm:"type:varchar(10);not null"`
	MovieID    *uuid.UUID `json:"movie_id,omitempty" gorm:"type:uuid"`
	EventID    *uuid.UUID `json:"event_id,omitempty" gorm:"type:uuid"`
	StartTime  time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime    time.Time  `json:"end_time" gorm:"not null"`
	TotalSeats int        `json:"total_seats" gorm:"not null"`
	IsActive   bool       `json:"is_active" gorm:"not null;default:true"`
	PriceTiers []PriceTier `json:"price_tiers,omitempty" gorm:"foreignKey:ShowtimeID"`
	CreatedBy  uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// PriceTier maps a seat type to its price for one showtime.
type PriceTier struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ShowtimeID uuid.UUID `json:"showtime_id" gorm:"type:uuid;not null;uniqueIndex:idx_tier_per_showtime"`
	SeatType   string    `json:"seat_type" gorm:"not null;size:50;uniqueIndex:idx_tier_per_showtime"`
	Price      float64   `json:"price" gorm:"not null;check:price >= 0"`
}

// ShowtimeSeat is one sold seat. The unique index on (showtime_id, seat_label)
// is the concurrency primitive: two transactions claiming the same seat cannot
// both commit.
type ShowtimeSeat struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ShowtimeID uuid.UUID `json:"showtime_id" gorm:"type:uuid;not null;uniqueIndex:idx_seat_per_showtime"`
	SeatLabel  string    `json:"seat_label" gorm:"not null;size:10;uniqueIndex:idx_seat_per_showtime"`
	BookingID  uuid.UUID `json:"booking_id" gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// ItemRef returns the scheduled item's discriminator and id.
func (s *Showtime) ItemRef() (ItemType, uuid.UUID) {
	if s.ItemType == ItemTypeEvent && s.EventID != nil {
		return ItemTypeEvent, *s.EventID
	}
	if s.MovieID != nil {
		return ItemTypeMovie, *s.MovieID
	}
	return s.ItemType, uuid.Nil
}

// TierFor returns the price tier for a seat type, if one is defined.
func (s *Showtime) TierFor(seatType string) (PriceTier, bool) {
	for _, tier := range s.PriceTiers {
		if tier.SeatType == seatType {
			return tier, true
		}
	}
	return PriceTier{}, false
}

// TableName specifies the table name for GORM
func (Showtime) TableName() string {
	return "showtimes"
}

func (PriceTier) TableName() string {
	return "showtime_price_tiers"
}

func (ShowtimeSeat) TableName() string {
	return "showtime_seats"
}
