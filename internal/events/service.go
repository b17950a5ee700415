package events

import (
	"context"
	"errors"

	"showtix/internal/shared/constants"
	"showtix/internal/users"
	"showtix/pkg/cache"

	"github.com/google/uuid"
)

var ErrNotEventOwner = errors.New("not the event owner")

type Service interface {
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	ListEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string, req UpdateEventRequest) (*EventResponse, error)
	DeactivateEvent(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateEvent(ctx context.Context, organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	event := &Event{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Language:        req.Language,
		PosterURL:       req.PosterURL,
		IsActive:        true,
		OrganizerID:     organizerID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_EVENTS_ACTIVE)

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	var resp EventResponse
	cacheKey := constants.CACHE_KEY_EVENT_DETAIL + id.String()

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_CATALOG_DETAIL, func() (interface{}, error) {
		event, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return event.ToResponse(), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *service) ListEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	events, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, events[i].ToResponse())
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &PaginatedEvents{
		Events:     responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string, req UpdateEventRequest) (*EventResponse, error) {
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.PosterURL != nil {
		updates["poster_url"] = *req.PosterURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_EVENT_DETAIL+id.String())
	s.cache.Delete(ctx, constants.CACHE_KEY_EVENTS_ACTIVE)

	return s.GetEvent(ctx, id)
}

func (s *service) DeactivateEvent(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if err := s.authorize(ctx, id, actorID, actorRole); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_EVENT_DETAIL+id.String())
	s.cache.Delete(ctx, constants.CACHE_KEY_EVENTS_ACTIVE)
	return nil
}

// authorize allows admins through and restricts organizers to their own events.
func (s *service) authorize(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if actorRole == string(users.RoleAdmin) {
		return nil
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		return ErrNotEventOwner
	}
	return nil
}
