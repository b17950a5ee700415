package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a live (non-movie) happening: concerts, stand-up, theatre.
type Event struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title           string    `json:"title" gorm:"not null;size:255"`
	Description     string    `json:"description" gorm:"type:text"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;check:duration_minutes > 0"`
	Category        string    `json:"category" gorm:"size:100"`
	Language        string    `json:"language" gorm:"size:50"`
	PosterURL       string    `json:"poster_url" gorm:"size:500"`
	IsActive        bool      `json:"is_active" gorm:"not null;default:true"`
	OrganizerID     uuid.UUID `json:"organizer_id" gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type EventResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        string    `json:"category"`
	Language        string    `json:"language"`
	PosterURL       string    `json:"poster_url"`
	IsActive        bool      `json:"is_active"`
	OrganizerID     string    `json:"organizer_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateEventRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=255"`
	Description     string `json:"description" binding:"max=2000"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=600"`
	Category        string `json:"category" binding:"max=100"`
	Language        string `json:"language" binding:"max=50"`
	PosterURL       string `json:"poster_url" binding:"omitempty,url"`
}

type UpdateEventRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
	Language        *string `json:"language" binding:"omitempty,max=50"`
	PosterURL       *string `json:"poster_url" binding:"omitempty,url"`
	IsActive        *bool   `json:"is_active"`
}

type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:              e.ID.String(),
		Title:           e.Title,
		Description:     e.Description,
		DurationMinutes: e.DurationMinutes,
		Category:        e.Category,
		Language:        e.Language,
		PosterURL:       e.PosterURL,
		IsActive:        e.IsActive,
		OrganizerID:     e.OrganizerID.String(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}
