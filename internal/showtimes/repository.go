package showtimes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrShowtimeNotFound = errors.New("showtime not found")

	// ErrSeatsAlreadyClaimed signals that at least one requested seat is
	// already sold; the caller re-reads the seat map to name the offenders.
	ErrSeatsAlreadyClaimed = errors.New("one or more seats already claimed")
)

const pgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	List(ctx context.Context, query ShowtimeListQuery) ([]Showtime, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Seat availability guard. ClaimSeats and ReleaseSeats run on the
	// caller's transaction handle so they share the booking's atomic scope.
	ClaimSeats(tx *gorm.DB, showtimeID uuid.UUID, bookingID uuid.UUID, seatLabels []string) error
	ReleaseSeats(tx *gorm.DB, showtimeID uuid.UUID, bookingID uuid.UUID) error
	GetBookedSeatLabels(ctx context.Context, showtimeID uuid.UUID) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, showtime *Showtime) error {
	return r.db.WithContext(ctx).Create(showtime).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).
		Preload("PriceTiers").
		First(&showtime, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) List(ctx context.Context, query ShowtimeListQuery) ([]Showtime, error) {
	var showtimes []Showtime

	q := r.db.WithContext(ctx).Preload("PriceTiers").Where("is_active = true")

	if query.MovieID != nil {
		q = q.Where("movie_id = ?", *query.MovieID)
	}
	if query.EventID != nil {
		q = q.Where("event_id = ?", *query.EventID)
	}
	if query.VenueID != nil {
		q = q.Where("venue_id = ?", *query.VenueID)
	}
	if !query.From.IsZero() {
		q = q.Where("start_time >= ?", query.From)
	}
	if !query.To.IsZero() {
		q = q.Where("start_time <= ?", query.To)
	}

	err := q.Order("start_time ASC").Find(&showtimes).Error
	return showtimes, err
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&Showtime{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShowtimeNotFound
	}
	return nil
}

// ClaimSeats bulk-inserts one row per requested seat. All rows insert or none
// do: a unique violation on (showtime_id, seat_label) means another booking
// holds at least one of the seats, and the surrounding transaction rolls the
// rest back.
func (r *repository) ClaimSeats(tx *gorm.DB, showtimeID uuid.UUID, bookingID uuid.UUID, seatLabels []string) error {
	rows := make([]ShowtimeSeat, 0, len(seatLabels))
	for _, label := range seatLabels {
		rows = append(rows, ShowtimeSeat{
			ShowtimeID: showtimeID,
			SeatLabel:  label,
			BookingID:  bookingID,
		})
	}

	if err := tx.Create(&rows).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSeatsAlreadyClaimed
		}
		return err
	}
	return nil
}

// ReleaseSeats removes exactly the rows the booking claimed.
func (r *repository) ReleaseSeats(tx *gorm.DB, showtimeID uuid.UUID, bookingID uuid.UUID) error {
	return tx.
		Where("showtime_id = ? AND booking_id = ?", showtimeID, bookingID).
		Delete(&ShowtimeSeat{}).Error
}

func (r *repository) GetBookedSeatLabels(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Model(&ShowtimeSeat{}).
		Where("showtime_id = ?", showtimeID).
		Order("seat_label ASC").
		Pluck("seat_label", &labels).Error
	return labels, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
