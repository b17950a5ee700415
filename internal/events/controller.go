package events

import (
	"net/http"

	"showtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	ListEvents(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeactivateEvent(c *gin.Context)
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

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	actorUUID, _, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	event, err := ctrl.service.CreateEvent(c.Request.Context(), actorUUID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create event", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Event created successfully", event)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	event, err := ctrl.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		if err == ErrEventNotFound {
			response.Error(c, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve event", nil)
		return
	}

	response.Success(c, http.StatusOK, "Event retrieved successfully", event)
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	events, err := ctrl.service.ListEvents(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list events", nil)
		return
	}

	response.Success(c, http.StatusOK, "Events retrieved successfully", events)
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	actorUUID, actorRole, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	event, err := ctrl.service.UpdateEvent(c.Request.Context(), eventID, actorUUID, actorRole, req)
	if err != nil {
		switch err {
		case ErrEventNotFound:
			response.Error(c, http.StatusNotFound, "Event not found", nil)
		case ErrNotEventOwner:
			response.Error(c, http.StatusForbidden, "You do not own this event", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update event", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Event updated successfully", event)
}

func (ctrl *controller) DeactivateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	actorUUID, actorRole, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	if err := ctrl.service.DeactivateEvent(c.Request.Context(), eventID, actorUUID, actorRole); err != nil {
		switch err {
		case ErrEventNotFound:
			response.Error(c, http.StatusNotFound, "Event not found", nil)
		case ErrNotEventOwner:
			response.Error(c, http.StatusForbidden, "You do not own this event", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to deactivate event", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Event deactivated successfully", nil)
}
