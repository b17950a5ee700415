package showtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"showtix/internal/events"
	"showtix/internal/movies"
	"showtix/internal/shared/config"
	"showtix/internal/shared/constants"
	"showtix/internal/venues"
	"showtix/pkg/cache"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemRef  = errors.New("showtime must reference an active movie or event")
	ErrDuplicateTier   = errors.New("duplicate seat type in price tiers")
	ErrScreenMismatch  = errors.New("screen does not belong to the venue")
	ErrStartTimeInPast = errors.New("start time must be in the future")
)

type Service interface {
	CreateShowtime(ctx context.Context, createdBy uuid.UUID, req CreateShowtimeRequest) (*ShowtimeResponse, error)
	GetShowtime(ctx context.Context, id uuid.UUID) (*ShowtimeResponse, error)
	ListShowtimes(ctx context.Context, query ShowtimeListQuery) ([]ShowtimeResponse, error)
	DeactivateShowtime(ctx context.Context, id uuid.UUID) error
	GetSeatMap(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error)

	// InvalidateSeatMap drops the cached seat map after a claim or release.
	InvalidateSeatMap(ctx context.Context, id uuid.UUID)
}

type service struct {
	repo      Repository
	venueSvc  venues.Service
	movieRepo movies.Repository
	eventRepo events.Repository
	cache     cache.Service
	cfg       *config.Config
}

func NewService(repo Repository, venueSvc venues.Service, movieRepo movies.Repository, eventRepo events.Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:      repo,
		venueSvc:  venueSvc,
		movieRepo: movieRepo,
		eventRepo: eventRepo,
		cache:     cacheService,
		cfg:       cfg,
	}
}

func (s *service) CreateShowtime(ctx context.Context, createdBy uuid.UUID, req CreateShowtimeRequest) (*ShowtimeResponse, error) {
	if req.StartTime.Before(time.Now()) {
		return nil, ErrStartTimeInPast
	}

	venue, err := s.venueSvc.GetVenue(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	screenBelongs := false
	for _, screen := range venue.Screens {
		if screen.ID == req.ScreenID.String() {
			screenBelongs = true
			break
		}
	}
	if !screenBelongs {
		return nil, ErrScreenMismatch
	}

	layout, err := s.venueSvc.GetScreenLayout(ctx, req.ScreenID)
	if err != nil {
		return nil, err
	}

	durationMinutes, err := s.itemDuration(ctx, ItemType(req.ItemType), req.ItemID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(req.PriceTiers))
	tiers := make([]PriceTier, 0, len(req.PriceTiers))
	for _, tierReq := range req.PriceTiers {
		if seen[tierReq.SeatType] {
			return nil, ErrDuplicateTier
		}
		seen[tierReq.SeatType] = true
		tiers = append(tiers, PriceTier{SeatType: tierReq.SeatType, Price: tierReq.Price})
	}

	// End time covers the feature plus a cleanup buffer before the next slot
	endTime := req.StartTime.
		Add(time.Duration(durationMinutes) * time.Minute).
		Add(s.cfg.Booking.ShowtimeBuffer)

	itemType := ItemType(req.ItemType)
	showtime := &Showtime{
		VenueID:    req.VenueID,
		ScreenID:   req.ScreenID,
		ItemType:   itemType,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		TotalSeats: layout.SeatCount(),
		IsActive:   true,
		PriceTiers: tiers,
		CreatedBy:  createdBy,
	}
	itemID := req.ItemID
	if itemType == ItemTypeMovie {
		showtime.MovieID = &itemID
	} else {
		showtime.EventID = &itemID
	}

	if err := s.repo.Create(ctx, showtime); err != nil {
		return nil, err
	}

	resp := showtime.ToResponse()
	return &resp, nil
}

func (s *service) itemDuration(ctx context.Context, itemType ItemType, itemID uuid.UUID) (int, error) {
	switch itemType {
	case ItemTypeMovie:
		movie, err := s.movieRepo.GetByID(ctx, itemID)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidItemRef, err)
		}
		if !movie.IsActive {
			return 0, ErrInvalidItemRef
		}
		return movie.DurationMinutes, nil
	case ItemTypeEvent:
		event, err := s.eventRepo.GetByID(ctx, itemID)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidItemRef, err)
		}
		if !event.IsActive {
			return 0, ErrInvalidItemRef
		}
		return event.DurationMinutes, nil
	default:
		return 0, ErrInvalidItemRef
	}
}

func (s *service) GetShowtime(ctx context.Context, id uuid.UUID) (*ShowtimeResponse, error) {
	var resp ShowtimeResponse

	err := s.cache.GetOrSet(ctx, constants.ShowtimeKey(id.String()), constants.TTL_SHOWTIME, func() (interface{}, error) {
		showtime, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return showtime.ToResponse(), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *service) ListShowtimes(ctx context.Context, query ShowtimeListQuery) ([]ShowtimeResponse, error) {
	showtimes, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]ShowtimeResponse, 0, len(showtimes))
	for i := range showtimes {
		responses = append(responses, showtimes[i].ToResponse())
	}
	return responses, nil
}

func (s *service) DeactivateShowtime(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, constants.ShowtimeKey(id.String()))
	s.InvalidateSeatMap(ctx, id)
	return nil
}

func (s *service) GetSeatMap(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error) {
	var resp SeatMapResponse

	err := s.cache.GetOrSet(ctx, constants.SeatMapKey(id.String()), constants.TTL_SEAT_MAP, func() (interface{}, error) {
		showtime, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		booked, err := s.repo.GetBookedSeatLabels(ctx, id)
		if err != nil {
			return nil, err
		}

		return SeatMapResponse{
			ShowtimeID:     id.String(),
			TotalSeats:     showtime.TotalSeats,
			BookedSeats:    booked,
			AvailableSeats: showtime.TotalSeats - len(booked),
		}, nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *service) InvalidateSeatMap(ctx context.Context, id uuid.UUID) {
	s.cache.Delete(ctx, constants.SeatMapKey(id.String()))
}
