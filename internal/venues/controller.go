package venues

import (
	"net/http"

	"showtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateVenue(c *gin.Context)
	GetVenue(c *gin.Context)
	ListVenues(c *gin.Context)
	DeactivateVenue(c *gin.Context)
	AddScreen(c *gin.Context)
	GetScreen(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func actorFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	actorID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, "", false
	}
	actorUUID, err := uuid.Parse(actorID.(string))
	if err != nil {
		return uuid.Nil, "", false
	}
	role, _ := c.Get("user_role")
	roleStr, _ := role.(string)
	return actorUUID, roleStr, true
}

func (ctrl *controller) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	actorUUID, _, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	venue, err := ctrl.service.CreateVenue(c.Request.Context(), actorUUID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create venue", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Venue created successfully", venue)
}

func (ctrl *controller) GetVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID", err.Error())
		return
	}

	venue, err := ctrl.service.GetVenue(c.Request.Context(), venueID)
	if err != nil {
		if err == ErrVenueNotFound {
			response.Error(c, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve venue", nil)
		return
	}

	response.Success(c, http.StatusOK, "Venue retrieved successfully", venue)
}

func (ctrl *controller) ListVenues(c *gin.Context) {
	city := c.Query("city")

	venues, err := ctrl.service.ListVenues(c.Request.Context(), city)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list venues", nil)
		return
	}

	response.Success(c, http.StatusOK, "Venues retrieved successfully", venues)
}

func (ctrl *controller) DeactivateVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID", err.Error())
		return
	}

	actorUUID, actorRole, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	if err := ctrl.service.DeactivateVenue(c.Request.Context(), venueID, actorUUID, actorRole); err != nil {
		switch err {
		case ErrVenueNotFound:
			response.Error(c, http.StatusNotFound, "Venue not found", nil)
		case ErrNotVenueOwner:
			response.Error(c, http.StatusForbidden, "You do not own this venue", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to deactivate venue", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Venue deactivated successfully", nil)
}

func (ctrl *controller) AddScreen(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID", err.Error())
		return
	}

	var req CreateScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	actorUUID, actorRole, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	screen, err := ctrl.service.AddScreen(c.Request.Context(), venueID, actorUUID, actorRole, req)
	if err != nil {
		switch err {
		case ErrVenueNotFound:
			response.Error(c, http.StatusNotFound, "Venue not found", nil)
		case ErrNotVenueOwner:
			response.Error(c, http.StatusForbidden, "You do not own this venue", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to add screen", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Screen added successfully", screen)
}

func (ctrl *controller) GetScreen(c *gin.Context) {
	screenID, err := uuid.Parse(c.Param("screenId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid screen ID", err.Error())
		return
	}

	screen, err := ctrl.service.GetScreen(c.Request.Context(), screenID)
	if err != nil {
		if err == ErrScreenNotFound {
			response.Error(c, http.StatusNotFound, "Screen not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve screen", nil)
		return
	}

	response.Success(c, http.StatusOK, "Screen retrieved successfully", screen)
}
