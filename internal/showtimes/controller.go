package showtimes

import (
	"net/http"

	"showtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateShowtime(c *gin.Context)
	GetShowtime(c *gin.Context)
	ListShowtimes(c *gin.Context)
	DeactivateShowtime(c *gin.Context)
	GetSeatMap(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateShowtime(c *gin.Context) {
	var req CreateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	actorID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}
	actorUUID, err := uuid.Parse(actorID.(string))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Invalid user ID format", nil)
		return
	}

	showtime, err := ctrl.service.CreateShowtime(c.Request.Context(), actorUUID, req)
	if err != nil {
		switch err {
		case ErrInvalidItemRef, ErrDuplicateTier, ErrScreenMismatch, ErrStartTimeInPast:
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create showtime", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Showtime created successfully", showtime)
}

func (ctrl *controller) GetShowtime(c *gin.Context) {
	showtimeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid showtime ID", err.Error())
		return
	}

	showtime, err := ctrl.service.GetShowtime(c.Request.Context(), showtimeID)
	if err != nil {
		if err == ErrShowtimeNotFound {
			response.Error(c, http.StatusNotFound, "Showtime not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve showtime", nil)
		return
	}

	response.Success(c, http.StatusOK, "Showtime retrieved successfully", showtime)
}

func (ctrl *controller) ListShowtimes(c *gin.Context) {
	var query ShowtimeListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	showtimes, err := ctrl.service.ListShowtimes(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list showtimes", nil)
		return
	}

	response.Success(c, http.StatusOK, "Showtimes retrieved successfully", showtimes)
}

func (ctrl *controller) DeactivateShowtime(c *gin.Context) {
	showtimeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid showtime ID", err.Error())
		return
	}

	if err := ctrl.service.DeactivateShowtime(c.Request.Context(), showtimeID); err != nil {
		if err == ErrShowtimeNotFound {
			response.Error(c, http.StatusNotFound, "Showtime not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to deactivate showtime", nil)
		return
	}

	response.Success(c, http.StatusOK, "Showtime deactivated successfully", nil)
}

func (ctrl *controller) GetSeatMap(c *gin.Context) {
	showtimeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid showtime ID", err.Error())
		return
	}

	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), showtimeID)
	if err != nil {
		if err == ErrShowtimeNotFound {
			response.Error(c, http.StatusNotFound, "Showtime not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve seat map", nil)
		return
	}

	response.Success(c, http.StatusOK, "Seat map retrieved successfully", seatMap)
}
