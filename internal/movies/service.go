package movies

import (
	"context"

	"showtix/internal/shared/constants"
	"showtix/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	CreateMovie(ctx context.Context, createdBy uuid.UUID, req CreateMovieRequest) (*MovieResponse, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*MovieResponse, error)
	ListMovies(ctx context.Context, query MovieListQuery) (*PaginatedMovies, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req UpdateMovieRequest) (*MovieResponse, error)
	DeactivateMovie(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateMovie(ctx context.Context, createdBy uuid.UUID, req CreateMovieRequest) (*MovieResponse, error) {
	movie := &Movie{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
		Genre:           req.Genre,
		PosterURL:       req.PosterURL,
		IsActive:        true,
		CreatedBy:       createdBy,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_MOVIES_ACTIVE)

	resp := movie.ToResponse()
	return &resp, nil
}

func (s *service) GetMovie(ctx context.Context, id uuid.UUID) (*MovieResponse, error) {
	var resp MovieResponse
	cacheKey := constants.CACHE_KEY_MOVIE_DETAIL + id.String()

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_CATALOG_DETAIL, func() (interface{}, error) {
		movie, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return movie.ToResponse(), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *service) ListMovies(ctx context.Context, query MovieListQuery) (*PaginatedMovies, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	movies, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		responses = append(responses, movies[i].ToResponse())
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &PaginatedMovies{
		Movies:     responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) UpdateMovie(ctx context.Context, id uuid.UUID, req UpdateMovieRequest) (*MovieResponse, error) {
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
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
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

	s.cache.Delete(ctx, constants.CACHE_KEY_MOVIE_DETAIL+id.String())
	s.cache.Delete(ctx, constants.CACHE_KEY_MOVIES_ACTIVE)

	return s.GetMovie(ctx, id)
}

func (s *service) DeactivateMovie(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, constants.CACHE_KEY_MOVIE_DETAIL+id.String())
	s.cache.Delete(ctx, constants.CACHE_KEY_MOVIES_ACTIVE)
	return nil
}
