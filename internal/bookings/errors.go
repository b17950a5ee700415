package bookings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrShowtimeInactive   = errors.New("showtime is not active")
	ErrPricingUnavailable = errors.New("no price tiers defined for showtime")
	ErrLayoutMissing      = errors.New("screen layout unavailable")

	ErrReferenceGenerationExhausted = errors.New("could not generate a unique booking reference")

	ErrNotBookingOwner        = errors.New("booking belongs to another user")
	ErrTooCloseToShowtime     = errors.New("too close to showtime to cancel")
	ErrAlreadyCancelled       = errors.New("booking is already cancelled")
	ErrAlreadyCheckedIn       = errors.New("booking is already checked in")
	ErrCannotCheckInCancelled = errors.New("cannot check in a cancelled booking")
	ErrInvalidStatus          = errors.New("booking status does not permit this operation")
	ErrCheckInWindowClosed    = errors.New("outside the check-in window")
	ErrNotAuthorizedForVenue  = errors.New("not authorized for this venue")
)

// SeatConflictError names the exact seats already held by other bookings so
// the client can deselect them and retry.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats unavailable: %s", strings.Join(e.Seats, ", "))
}

// InvalidSeatsError names requested seat identifiers that do not exist in the
// screen layout or appear more than once in the request.
type InvalidSeatsError struct {
	Seats  []string
	Reason string
}

func (e *InvalidSeatsError) Error() string {
	return fmt.Sprintf("invalid seat selection (%s): %s", e.Reason, strings.Join(e.Seats, ", "))
}
