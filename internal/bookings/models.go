package bookings

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Reference  string    `json:"reference" gorm:"uniqueIndex;not null;size:10"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ShowtimeID uuid.UUID `json:"showtime_id" gorm:"type:uuid;not null;index"`

	// Seat labels are snapshotted here; the authoritative claim rows live in
	// showtime_seats and are deleted on cancellation.
	SeatLabels []string `json:"seat_labels" gorm:"serializer:json;type:jsonb;not null"`

	OriginalAmount float64 `json:"original_amount" gorm:"not null"`
	DiscountAmount float64 `json:"discount_amount" gorm:"not null;default:0"`
	TotalAmount    float64 `json:"total_amount" gorm:"not null"`

	PromoCodeID *uuid.UUID `json:"promo_code_id,omitempty" gorm:"type:uuid"`
	PromoCode   string     `json:"promo_code,omitempty" gorm:"size:50"` // code snapshot at booking time

	Status Status `json:"status" gorm:"type:varchar(20);not null;index"`

	IsCheckedIn bool       `json:"is_checked_in" gorm:"not null;default:false"`
	CheckInTime *time.Time `json:"check_in_time,omitempty"`
	CheckedInBy *uuid.UUID `json:"checked_in_by,omitempty" gorm:"type:uuid"`

	BookingTime time.Time `json:"booking_time" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
