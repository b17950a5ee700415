package bookings

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ShowtimeID uuid.UUID `json:"showtime_id" binding:"required"`
	Seats      []string  `json:"seats" binding:"required,min=1,dive,min=2,max=6"`
	PromoCode  string    `json:"promo_code,omitempty"`
}

type BookingResponse struct {
	ID             string     `json:"id"`
	Reference      string     `json:"reference"`
	UserID         string     `json:"user_id"`
	ShowtimeID     string     `json:"showtime_id"`
	Seats          []string   `json:"seats"`
	OriginalAmount float64    `json:"original_amount"`
	DiscountAmount float64    `json:"discount_amount"`
	TotalAmount    float64    `json:"total_amount"`
	PromoCode      string     `json:"promo_code,omitempty"`
	Status         string     `json:"status"`
	IsCheckedIn    bool       `json:"is_checked_in"`
	CheckInTime    *time.Time `json:"check_in_time,omitempty"`
	BookingTime    time.Time  `json:"booking_time"`
}

// CheckInResult is the summary handed to gate staff after a successful scan.
type CheckInResult struct {
	Reference   string    `json:"reference"`
	BookingID   string    `json:"booking_id"`
	ShowtimeID  string    `json:"showtime_id"`
	Seats       []string  `json:"seats"`
	CheckInTime time.Time `json:"check_in_time"`
	CheckedInBy string    `json:"checked_in_by"`
}

func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:             b.ID.String(),
		Reference:      b.Reference,
		UserID:         b.UserID.String(),
		ShowtimeID:     b.ShowtimeID.String(),
		Seats:          b.SeatLabels,
		OriginalAmount: b.OriginalAmount,
		DiscountAmount: b.DiscountAmount,
		TotalAmount:    b.TotalAmount,
		PromoCode:      b.PromoCode,
		Status:         string(b.Status),
		IsCheckedIn:    b.IsCheckedIn,
		CheckInTime:    b.CheckInTime,
		BookingTime:    b.BookingTime,
	}
}
