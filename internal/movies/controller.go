package movies

import (
	"net/http"

	"showtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateMovie(c *gin.Context)
	GetMovie(c *gin.Context)
	ListMovies(c *gin.Context)
	UpdateMovie(c *gin.Context)
	DeactivateMovie(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	adminID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	adminUUID, err := uuid.Parse(adminID.(string))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Invalid user ID format", nil)
		return
	}

	movie, err := ctrl.service.CreateMovie(c.Request.Context(), adminUUID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create movie", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Movie created successfully", movie)
}

func (ctrl *controller) GetMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid movie ID", err.Error())
		return
	}

	movie, err := ctrl.service.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		if err == ErrMovieNotFound {
			response.Error(c, http.StatusNotFound, "Movie not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve movie", nil)
		return
	}

	response.Success(c, http.StatusOK, "Movie retrieved successfully", movie)
}

func (ctrl *controller) ListMovies(c *gin.Context) {
	var query MovieListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	movies, err := ctrl.service.ListMovies(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list movies", nil)
		return
	}

	response.Success(c, http.StatusOK, "Movies retrieved successfully", movies)
}

func (ctrl *controller) UpdateMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid movie ID", err.Error())
		return
	}

	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	movie, err := ctrl.service.UpdateMovie(c.Request.Context(), movieID, req)
	if err != nil {
		if err == ErrMovieNotFound {
			response.Error(c, http.StatusNotFound, "Movie not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update movie", nil)
		return
	}

	response.Success(c, http.StatusOK, "Movie updated successfully", movie)
}

func (ctrl *controller) DeactivateMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid movie ID", err.Error())
		return
	}

	if err := ctrl.service.DeactivateMovie(c.Request.Context(), movieID); err != nil {
		if err == ErrMovieNotFound {
			response.Error(c, http.StatusNotFound, "Movie not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to deactivate movie", nil)
		return
	}

	response.Success(c, http.StatusOK, "Movie deactivated successfully", nil)
}
