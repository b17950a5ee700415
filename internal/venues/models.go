package venues

import (
	"time"

	"github.com/google/uuid"
)

const SeatTypeNormal = "Normal"

type Venue struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	City        string    `json:"city" gorm:"not null;size:100;index"`
	Address     string    `json:"address" gorm:"size:500"`
	OrganizerID uuid.UUID `json:"organizer_id" gorm:"type:uuid;not null;index"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	Screens     []Screen  `json:"screens,omitempty" gorm:"foreignKey:VenueID"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Screen struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID    uuid.UUID   `json:"venue_id" gorm:"type:uuid;not null;index"`
	Name       string      `json:"name" gorm:"not null;size:100"`
	TotalSeats int         `json:"total_seats" gorm:"not null;check:total_seats > 0"`
	Rows       []ScreenRow `json:"rows,omitempty" gorm:"foreignKey:ScreenID"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// ScreenRow maps one row of seats to a seat type. Seat identifiers are
// "<row label><seat number>", e.g. A12 is seat 12 of row A.
type ScreenRow struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScreenID  uuid.UUID `json:"screen_id" gorm:"type:uuid;not null;index"`
	RowLabel  string    `json:"row_label" gorm:"not null;size:5"`
	SeatType  string    `json:"seat_type" gorm:"not null;size:50;default:'Normal'"`
	SeatCount int       `json:"seat_count" gorm:"not null;check:seat_count > 0"`
	Position  int       `json:"position" gorm:"not null;default:0"` // display order, front to back
}

type VenueResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	City        string           `json:"city"`
	Address     string           `json:"address"`
	OrganizerID string           `json:"organizer_id"`
	IsActive    bool             `json:"is_active"`
	Screens     []ScreenResponse `json:"screens,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ScreenResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	TotalSeats int                 `json:"total_seats"`
	Rows       []ScreenRowResponse `json:"rows,omitempty"`
}

type ScreenRowResponse struct {
	RowLabel  string `json:"row_label"`
	SeatType  string `json:"seat_type"`
	SeatCount int    `json:"seat_count"`
	Position  int    `json:"position"`
}

func (v *Venue) ToResponse() VenueResponse {
	screens := make([]ScreenResponse, 0, len(v.Screens))
	for i := range v.Screens {
		screens = append(screens, v.Screens[i].ToResponse())
	}
	return VenueResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		City:        v.City,
		Address:     v.Address,
		OrganizerID: v.OrganizerID.String(),
		IsActive:    v.IsActive,
		Screens:     screens,
		CreatedAt:   v.CreatedAt,
	}
}

func (s *Screen) ToResponse() ScreenResponse {
	rows := make([]ScreenRowResponse, 0, len(s.Rows))
	for i := range s.Rows {
		r := s.Rows[i]
		rows = append(rows, ScreenRowResponse{
			RowLabel:  r.RowLabel,
			SeatType:  r.SeatType,
			SeatCount: r.SeatCount,
			Position:  r.Position,
		})
	}
	return ScreenResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		TotalSeats: s.TotalSeats,
		Rows:       rows,
	}
}

// TableName specifies the table name for GORM
func (Venue) TableName() string {
	return "venues"
}

func (Screen) TableName() string {
	return "screens"
}

func (ScreenRow) TableName() string {
	return "screen_rows"
}
