package venues

import (
	"context"
	"errors"

	"showtix/internal/shared/constants"
	"showtix/internal/users"
	"showtix/pkg/cache"

	"github.com/google/uuid"
)

var ErrNotVenueOwner = errors.New("not the venue owner")

type Service interface {
	CreateVenue(ctx context.Context, organizerID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error)
	ListVenues(ctx context.Context, city string) ([]VenueResponse, error)
	DeactivateVenue(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error

	AddScreen(ctx context.Context, venueID uuid.UUID, actorID uuid.UUID, actorRole string, req CreateScreenRequest) (*ScreenResponse, error)
	GetScreenLayout(ctx context.Context, screenID uuid.UUID) (Layout, error)
	GetScreen(ctx context.Context, screenID uuid.UUID) (*ScreenResponse, error)

	// IsVenueOwner reports whether the actor owns the venue; used by check-in
	// authorization.
	IsVenueOwner(ctx context.Context, venueID uuid.UUID, actorID uuid.UUID) (bool, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateVenue(ctx context.Context, organizerID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error) {
	venue := &Venue{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		OrganizerID: organizerID,
		IsActive:    true,
	}

	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}

	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error) {
	var resp VenueResponse
	cacheKey := constants.CACHE_KEY_VENUE_DETAIL + id.String()

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_CATALOG_DETAIL, func() (interface{}, error) {
		venue, err := s.repo.GetVenueByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return venue.ToResponse(), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *service) ListVenues(ctx context.Context, city string) ([]VenueResponse, error) {
	venues, err := s.repo.ListVenues(ctx, city)
	if err != nil {
		return nil, err
	}

	responses := make([]VenueResponse, 0, len(venues))
	for i := range venues {
		responses = append(responses, venues[i].ToResponse())
	}
	return responses, nil
}

func (s *service) DeactivateVenue(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return err
	}

	if err := s.repo.DeactivateVenue(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_VENUE_DETAIL+id.String())
	return nil
}

func (s *service) AddScreen(ctx context.Context, venueID uuid.UUID, actorID uuid.UUID, actorRole string, req CreateScreenRequest) (*ScreenResponse, error) {
	if err := s.authorize(ctx, venueID, actorID, actorRole); err != nil {
		return nil, err
	}

	rows := make([]ScreenRow, 0, len(req.Rows))
	totalSeats := 0
	for i, rowReq := range req.Rows {
		seatType := rowReq.SeatType
		if seatType == "" {
			seatType = SeatTypeNormal
		}
		rows = append(rows, ScreenRow{
			RowLabel:  rowReq.RowLabel,
			SeatType:  seatType,
			SeatCount: rowReq.SeatCount,
			Position:  i,
		})
		totalSeats += rowReq.SeatCount
	}

	screen := &Screen{
		VenueID:    venueID,
		Name:       req.Name,
		TotalSeats: totalSeats,
	}

	if err := s.repo.CreateScreen(ctx, screen, rows); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_VENUE_DETAIL+venueID.String())

	screen.Rows = rows
	resp := screen.ToResponse()
	return &resp, nil
}

func (s *service) GetScreenLayout(ctx context.Context, screenID uuid.UUID) (Layout, error) {
	var rows []ScreenRow
	cacheKey := constants.CACHE_KEY_SCREEN_LAYOUT + screenID.String()

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_VENUE_LAYOUT, func() (interface{}, error) {
		return s.repo.GetScreenLayout(ctx, screenID)
	}, &rows)
	if err != nil {
		return Layout{}, err
	}

	return NewLayout(rows), nil
}

func (s *service) GetScreen(ctx context.Context, screenID uuid.UUID) (*ScreenResponse, error) {
	screen, err := s.repo.GetScreenByID(ctx, screenID)
	if err != nil {
		return nil, err
	}
	resp := screen.ToResponse()
	return &resp, nil
}

func (s *service) IsVenueOwner(ctx context.Context, venueID uuid.UUID, actorID uuid.UUID) (bool, error) {
	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return false, err
	}
	return venue.OrganizerID == actorID, nil
}

func (s *service) authorize(ctx context.Context, venueID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if actorRole == string(users.RoleAdmin) {
		return nil
	}

	owner, err := s.IsVenueOwner(ctx, venueID, actorID)
	if err != nil {
		return err
	}
	if !owner {
		return ErrNotVenueOwner
	}
	return nil
}
