package movies

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title           string    `json:"title" gorm:"not null;size:255"`
	Description     string    `json:"description" gorm:"type:text"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;check:duration_minutes > 0"`
	Language        string    `json:"language" gorm:"size:50"`
	Genre           string    `json:"genre" gorm:"size:100"`
	PosterURL       string    `json:"poster_url" gorm:"size:500"`
	IsActive        bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedBy       uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type MovieResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Language        string    `json:"language"`
	Genre           string    `json:"genre"`
	PosterURL       string    `json:"poster_url"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateMovieRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=255"`
	Description     string `json:"description" binding:"max=2000"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=600"`
	Language        string `json:"language" binding:"max=50"`
	Genre           string `json:"genre" binding:"max=100"`
	PosterURL       string `json:"poster_url" binding:"omitempty,url"`
}

type UpdateMovieRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
	Language        *string `json:"language" binding:"omitempty,max=50"`
	Genre           *string `json:"genre" binding:"omitempty,max=100"`
	PosterURL       *string `json:"poster_url" binding:"omitempty,url"`
	IsActive        *bool   `json:"is_active"`
}

type MovieListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
	Genre  string `form:"genre"`
}

type PaginatedMovies struct {
	Movies     []MovieResponse `json:"movies"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func (m *Movie) ToResponse() MovieResponse {
	return MovieResponse{
		ID:              m.ID.String(),
		Title:           m.Title,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		Language:        m.Language,
		Genre:           m.Genre,
		PosterURL:       m.PosterURL,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Movie) TableName() string {
	return "movies"
}
