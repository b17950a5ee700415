// Package checkin exposes the gate-scanning surface for venue staff. It is a
// thin transport layer over the booking service's check-in operation.
package checkin

import (
	"errors"
	"net/http"

	"showtix/internal/bookings"
	"showtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScanRequest struct {
	Reference string `json:"reference" binding:"required,len=6"`
}

type Controller interface {
	ValidateScan(c *gin.Context)
}

type controller struct {
	bookingSvc bookings.Service
}

func NewController(bookingSvc bookings.Service) Controller {
	return &controller{bookingSvc: bookingSvc}
}

// ValidateScan checks a scanned booking reference in and returns the seat
// summary for the gate display.
func (ctrl *controller) ValidateScan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid scan request", err.Error())
		return
	}

	staffID, staffRole, ok := staffFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	result, err := ctrl.bookingSvc.CheckIn(c.Request.Context(), req.Reference, staffID, staffRole)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
		case errors.Is(err, bookings.ErrAlreadyCheckedIn):
			response.Error(c, http.StatusConflict, "Booking is already checked in", nil)
		case errors.Is(err, bookings.ErrCannotCheckInCancelled), errors.Is(err, bookings.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, bookings.ErrCheckInWindowClosed):
			response.Error(c, http.StatusBadRequest, "Check-in is not open for this showtime", nil)
		case errors.Is(err, bookings.ErrNotAuthorizedForVenue):
			response.Error(c, http.StatusForbidden, "Not authorized to check in for this venue", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to check in booking", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Check-in successful", result)
}

func staffFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	rawID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		return uuid.Nil, "", false
	}

	role := ""
	if rawRole, exists := c.Get("user_role"); exists {
		role, _ = rawRole.(string)
	}
	return id, role, true
}
