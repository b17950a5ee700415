package venues

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrScreenNotFound = errors.New("screen not found")
)

type Repository interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, city string) ([]Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeactivateVenue(ctx context.Context, id uuid.UUID) error

	CreateScreen(ctx context.Context, screen *Screen, rows []ScreenRow) error
	GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error)
	GetScreenLayout(ctx context.Context, screenID uuid.UUID) ([]ScreenRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ============= VENUES =============

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).
		Preload("Screens").
		First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *repository) ListVenues(ctx context.Context, city string) ([]Venue, error) {
	var venues []Venue
	q := r.db.WithContext(ctx).Where("is_active = true")
	if city != "" {
		q = q.Where("city = ?", city)
	}
	err := q.Order("name ASC").Find(&venues).Error
	return venues, err
}

func (r *repository) UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (r *repository) DeactivateVenue(ctx context.Context, id uuid.UUID) error {
	return r.UpdateVenue(ctx, id, map[string]interface{}{"is_active": false})
}

// ============= SCREENS =============

func (r *repository) CreateScreen(ctx context.Context, screen *Screen, rows []ScreenRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(screen).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].ScreenID = screen.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error) {
	var screen Screen
	err := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&screen, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreenNotFound
		}
		return nil, err
	}
	return &screen, nil
}

func (r *repository) GetScreenLayout(ctx context.Context, screenID uuid.UUID) ([]ScreenRow, error) {
	var rows []ScreenRow
	err := r.db.WithContext(ctx).
		Where("screen_id = ?", screenID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrScreenNotFound
	}
	return rows, nil
}
