package bookings

import (
	"errors"
	"net/http"

	"showtix/internal/pricing"
	"showtix/internal/promos"
	"showtix/internal/shared/utils/response"
	"showtix/internal/showtimes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateBooking(c *gin.Context)
	GetBooking(c *gin.Context)
	ListMyBookings(c *gin.Context)
	CancelBooking(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	userID, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	booking, err := ctrl.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Booking confirmed", booking)
}

func (ctrl *controller) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID", err.Error())
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}
	actorRole, _ := c.Get("user_role")

	booking, err := ctrl.service.GetBooking(c.Request.Context(), bookingID, actorID, roleString(actorRole))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
		case errors.Is(err, ErrNotBookingOwner):
			response.Error(c, http.StatusForbidden, "Booking belongs to another user", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to retrieve booking", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Booking retrieved successfully", booking)
}

func (ctrl *controller) ListMyBookings(c *gin.Context) {
	userID, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	bookings, err := ctrl.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings", nil)
		return
	}

	response.Success(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (ctrl *controller) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID", err.Error())
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}
	actorRole, _ := c.Get("user_role")

	booking, err := ctrl.service.CancelBooking(c.Request.Context(), bookingID, actorID, roleString(actorRole))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
		case errors.Is(err, ErrNotBookingOwner):
			response.Error(c, http.StatusForbidden, "Booking belongs to another user", nil)
		case errors.Is(err, ErrAlreadyCancelled), errors.Is(err, ErrAlreadyCheckedIn),
			errors.Is(err, ErrTooCloseToShowtime), errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel booking", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Booking cancelled successfully", booking)
}

// writeBookingError maps booking-creation failures onto HTTP statuses. Seat
// conflicts are 409 with the contested seats so the client can retry.
func writeBookingError(c *gin.Context, err error) {
	var seatConflict *SeatConflictError
	var invalidSeats *InvalidSeatsError
	var unpriced *pricing.UnpricedSeatError
	var minPurchase *promos.MinPurchaseNotMetError

	switch {
	case errors.As(err, &seatConflict):
		response.Error(c, http.StatusConflict, "Some seats are no longer available", gin.H{"seats": seatConflict.Seats})
	case errors.As(err, &invalidSeats):
		response.Error(c, http.StatusBadRequest, err.Error(), gin.H{"seats": invalidSeats.Seats})
	case errors.As(err, &unpriced):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &minPurchase):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, showtimes.ErrShowtimeNotFound):
		response.Error(c, http.StatusNotFound, "Showtime not found", nil)
	case errors.Is(err, ErrShowtimeInactive), errors.Is(err, ErrPricingUnavailable), errors.Is(err, ErrLayoutMissing):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, promos.ErrPromoNotFound), errors.Is(err, promos.ErrPromoInactiveOrExpired):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrReferenceGenerationExhausted):
		response.Error(c, http.StatusInternalServerError, "Could not allocate a booking reference, please retry", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to create booking", nil)
	}
}

func actorFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func roleString(raw interface{}) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return ""
}
