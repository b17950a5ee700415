package showtimes

import (
	"time"

	"github.com/google/uuid"
)

type CreateShowtimeRequest struct {
	VenueID    uuid.UUID          `json:"venue_id" binding:"required"`
	ScreenID   uuid.UUID          `json:"screen_id" binding:"required"`
	ItemType   string             `json:"item_type" binding:"required,oneof=MOVIE EVENT"`
	ItemID     uuid.UUID          `json:"item_id" binding:"required"`
	StartTime  time.Time          `json:"start_time" binding:"required"`
	PriceTiers []PriceTierRequest `json:"price_tiers" binding:"required,min=1,dive"`
}

type PriceTierRequest struct {
	SeatType string  `json:"seat_type" binding:"required,min=1,max=50"`
	Price    float64 `json:"price" binding:"min=0"`
}

type ShowtimeListQuery struct {
	MovieID *uuid.UUID `form:"movie_id"`
	EventID *uuid.UUID `form:"event_id"`
	VenueID *uuid.UUID `form:"venue_id"`
	From    time.Time  `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To      time.Time  `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ShowtimeResponse struct {
	ID         string              `json:"id"`
	VenueID    string              `json:"venue_id"`
	ScreenID   string              `json:"screen_id"`
	ItemType   string              `json:"item_type"`
	ItemID     string              `json:"item_id"`
	StartTime  time.Time           `json:"start_time"`
	EndTime    time.Time           `json:"end_time"`
	TotalSeats int                 `json:"total_seats"`
	IsActive   bool                `json:"is_active"`
	PriceTiers []PriceTierResponse `json:"price_tiers"`
}

type PriceTierResponse struct {
	SeatType string  `json:"seat_type"`
	Price    float64 `json:"price"`
}

// SeatMapResponse is the browse-time view of a showtime's seats. It is served
// from a short-TTL cache and is advisory only; the claim transaction is the
// source of truth.
type SeatMapResponse struct {
	ShowtimeID     string   `json:"showtime_id"`
	TotalSeats     int      `json:"total_seats"`
	BookedSeats    []string `json:"booked_seats"`
	AvailableSeats int      `json:"available_seats"`
}

func (s *Showtime) ToResponse() ShowtimeResponse {
	itemType, itemID := s.ItemRef()

	tiers := make([]PriceTierResponse, 0, len(s.PriceTiers))
	for _, tier := range s.PriceTiers {
		tiers = append(tiers, PriceTierResponse{SeatType: tier.SeatType, Price: tier.Price})
	}

	return ShowtimeResponse{
		ID:         s.ID.String(),
		VenueID:    s.VenueID.String(),
		ScreenID:   s.ScreenID.String(),
		ItemType:   string(itemType),
		ItemID:     itemID.String(),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		TotalSeats: s.TotalSeats,
		IsActive:   s.IsActive,
		PriceTiers: tiers,
	}
}
