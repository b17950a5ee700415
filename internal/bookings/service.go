package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showtix/internal/notifications"
	"showtix/internal/pricing"
	"showtix/internal/promos"
	"showtix/internal/shared/config"
	"showtix/internal/showtimes"
	"showtix/internal/users"
	"showtix/internal/venues"
	"showtix/pkg/logger"
)

// UserDirectory is the read-only user lookup the booking flow needs for
// check-in authorization and notification recipients.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingResponse, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingResponse, error)

	// CheckIn marks a booking attended, keyed by its public reference. staffID
	// must be an admin or an approved organizer owning the showtime's venue.
	CheckIn(ctx context.Context, reference string, staffID uuid.UUID, staffRole string) (*CheckInResult, error)

	// Payment transitions for an external payment collaborator.
	ConfirmPayment(ctx context.Context, id uuid.UUID) error
	FailPayment(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	showtimeRepo showtimes.Repository
	showtimeSvc  showtimes.Service
	venueSvc     venues.Service
	promoSvc     promos.Service
	userDir      UserDirectory
	refGen       *ReferenceGenerator
	producer     *notifications.Producer
	cfg          *config.Config
	log          *logger.Logger
}

func NewService(
	repo Repository,
	showtimeRepo showtimes.Repository,
	showtimeSvc showtimes.Service,
	venueSvc venues.Service,
	promoSvc promos.Service,
	userDir UserDirectory,
	refGen *ReferenceGenerator,
	producer *notifications.Producer,
	cfg *config.Config,
	log *logger.Logger,
) Service {
	return &service{
		repo:         repo,
		showtimeRepo: showtimeRepo,
		showtimeSvc:  showtimeSvc,
		venueSvc:     venueSvc,
		promoSvc:     promoSvc,
		userDir:      userDir,
		refGen:       refGen,
		producer:     producer,
		cfg:          cfg,
		log:          log,
	}
}

// CreateBooking runs the whole booking protocol: validate the request against
// the screen layout, price the seats, validate the promo, then claim seats,
// mint a reference, insert the booking and consume the promo use inside one
// database transaction. Any failure after the claim rolls the claim back.
func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error) {
	now := time.Now().UTC()

	showtime, err := s.showtimeRepo.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}
	if !showtime.IsActive {
		return nil, ErrShowtimeInactive
	}
	if len(showtime.PriceTiers) == 0 {
		return nil, ErrPricingUnavailable
	}

	seats, err := s.normalizeSeats(req.Seats)
	if err != nil {
		return nil, err
	}

	layout, err := s.venueSvc.GetScreenLayout(ctx, showtime.ScreenID)
	if err != nil {
		return nil, ErrLayoutMissing
	}
	if unknown := seatsOutsideLayout(seats, layout); len(unknown) > 0 {
		return nil, &InvalidSeatsError{Seats: unknown, Reason: "not in screen layout"}
	}

	quote, err := pricing.Calculate(seats, layout, showtime)
	if err != nil {
		return nil, err
	}

	// Promo is validated before the claim so a bad code never costs the user
	// their seats. The use counter is consumed inside the transaction below.
	var promo *promos.PromoCode
	var discount float64
	if req.PromoCode != "" {
		promo, discount, err = s.promoSvc.Validate(ctx, req.PromoCode, quote.OriginalAmount, now)
		if err != nil {
			return nil, err
		}
	}

	totalAmount := pricing.Round2(quote.OriginalAmount - discount)
	if totalAmount < 0 {
		totalAmount = 0
	}

	booking := &Booking{
		ID:             uuid.New(),
		UserID:         userID,
		ShowtimeID:     showtime.ID,
		SeatLabels:     seats,
		OriginalAmount: quote.OriginalAmount,
		DiscountAmount: discount,
		TotalAmount:    totalAmount,
		Status:         StatusConfirmed,
		BookingTime:    now,
	}
	if promo != nil {
		booking.PromoCodeID = &promo.ID
		booking.PromoCode = promo.Code
	}

	txErr := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.showtimeRepo.ClaimSeats(tx, showtime.ID, booking.ID, seats); err != nil {
			return err
		}

		reference, err := s.refGen.Generate(ctx, s.repo.ReferenceExists)
		if err != nil {
			return err
		}
		booking.Reference = reference

		if err := s.repo.CreateInTx(tx, booking); err != nil {
			return err
		}

		if promo != nil {
			if err := s.promoSvc.ConsumeUse(tx, promo.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, showtimes.ErrSeatsAlreadyClaimed) {
			return nil, s.seatConflict(ctx, showtime.ID, seats)
		}
		return nil, txErr
	}

	s.showtimeSvc.InvalidateSeatMap(ctx, showtime.ID)
	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.Reference, showtime.ID.String(), userID.String())
	s.notify(ctx, notifications.NotificationBookingConfirmed, booking)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(booking, actorID, actorRole); err != nil {
		return nil, err
	}
	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]BookingResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses, nil
}

// CancelBooking releases the booking's seats and marks it CANCELLED, both in
// one transaction. Cancellation closes a configured cutoff before showtime.
func (s *service) CancelBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(booking, actorID, actorRole); err != nil {
		return nil, err
	}

	switch booking.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusCheckedIn:
		return nil, ErrAlreadyCheckedIn
	case StatusConfirmed, StatusPaymentPending:
	default:
		return nil, ErrInvalidStatus
	}

	showtime, err := s.showtimeRepo.GetByID(ctx, booking.ShowtimeID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(showtime.StartTime.Add(-s.cfg.Booking.CancellationCutoff)) {
		return nil, ErrTooCloseToShowtime
	}

	from := booking.Status
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatusInTx(tx, booking.ID, from, StatusCancelled, nil); err != nil {
			return err
		}
		return s.showtimeRepo.ReleaseSeats(tx, booking.ShowtimeID, booking.ID)
	})
	if err != nil {
		return nil, err
	}

	booking.Status = StatusCancelled
	s.showtimeSvc.InvalidateSeatMap(ctx, booking.ShowtimeID)
	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.ShowtimeID.String(), booking.UserID.String())
	s.notify(ctx, notifications.NotificationBookingCancelled, booking)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) CheckIn(ctx context.Context, reference string, staffID uuid.UUID, staffRole string) (*CheckInResult, error) {
	booking, err := s.repo.GetByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case StatusCheckedIn:
		return nil, ErrAlreadyCheckedIn
	case StatusCancelled:
		return nil, ErrCannotCheckInCancelled
	case StatusConfirmed:
	default:
		return nil, ErrInvalidStatus
	}

	showtime, err := s.showtimeRepo.GetByID(ctx, booking.ShowtimeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	opens := showtime.StartTime.Add(-s.cfg.Booking.CheckInOpensBefore)
	if now.Before(opens) || now.After(showtime.EndTime) {
		return nil, ErrCheckInWindowClosed
	}

	if err := s.authorizeStaff(ctx, showtime.VenueID, staffID, staffRole); err != nil {
		return nil, err
	}

	checkInTime := now.UTC()
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.repo.UpdateStatusInTx(tx, booking.ID, StatusConfirmed, StatusCheckedIn, map[string]interface{}{
			"is_checked_in": true,
			"check_in_time": checkInTime,
			"checked_in_by": staffID,
		})
	})
	if err != nil {
		// Lost a race with a concurrent scan of the same reference.
		if errors.Is(err, ErrInvalidStatus) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	booking.Status = StatusCheckedIn
	booking.IsCheckedIn = true
	booking.CheckInTime = &checkInTime
	booking.CheckedInBy = &staffID
	s.log.LogCheckIn(ctx, booking.Reference, staffID.String())
	s.notify(ctx, notifications.NotificationCheckInConfirmed, booking)

	return &CheckInResult{
		Reference:   booking.Reference,
		BookingID:   booking.ID.String(),
		ShowtimeID:  booking.ShowtimeID.String(),
		Seats:       booking.SeatLabels,
		CheckInTime: checkInTime,
		CheckedInBy: staffID.String(),
	}, nil
}

func (s *service) ConfirmPayment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.repo.UpdateStatusInTx(tx, id, StatusPaymentPending, StatusConfirmed, nil)
	})
}

// FailPayment marks the booking PAYMENT_FAILED and releases its seats so
// they go back on sale.
func (s *service) FailPayment(ctx context.Context, id uuid.UUID) error {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatusInTx(tx, id, StatusPaymentPending, StatusPaymentFailed, nil); err != nil {
			return err
		}
		return s.showtimeRepo.ReleaseSeats(tx, booking.ShowtimeID, booking.ID)
	})
	if err != nil {
		return err
	}

	s.showtimeSvc.InvalidateSeatMap(ctx, booking.ShowtimeID)
	booking.Status = StatusPaymentFailed
	s.notify(ctx, notifications.NotificationPaymentFailed, booking)
	return nil
}

// normalizeSeats uppercases labels and rejects duplicates and oversized
// requests before any database work.
func (s *service) normalizeSeats(requested []string) ([]string, error) {
	if len(requested) > s.cfg.Booking.MaxSeatsPerBooking {
		return nil, &InvalidSeatsError{Seats: requested, Reason: "exceeds seats per booking limit"}
	}

	seats := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	var dupes []string
	for _, label := range requested {
		normalized := strings.ToUpper(strings.TrimSpace(label))
		if seen[normalized] {
			dupes = append(dupes, normalized)
			continue
		}
		seen[normalized] = true
		seats = append(seats, normalized)
	}
	if len(dupes) > 0 {
		return nil, &InvalidSeatsError{Seats: dupes, Reason: "duplicate seats"}
	}
	return seats, nil
}

func seatsOutsideLayout(seats []string, layout venues.Layout) []string {
	var unknown []string
	for _, label := range seats {
		if !layout.Contains(label) {
			unknown = append(unknown, label)
		}
	}
	return unknown
}

// seatConflict re-reads the sold seats after the claim rolled back and names
// exactly the requested seats that are taken.
func (s *service) seatConflict(ctx context.Context, showtimeID uuid.UUID, requested []string) error {
	booked, err := s.showtimeRepo.GetBookedSeatLabels(ctx, showtimeID)
	if err != nil {
		// Could not name the offenders; report the whole selection.
		return &SeatConflictError{Seats: requested}
	}

	bookedSet := make(map[string]bool, len(booked))
	for _, label := range booked {
		bookedSet[label] = true
	}
	var conflict []string
	for _, label := range requested {
		if bookedSet[label] {
			conflict = append(conflict, label)
		}
	}
	if len(conflict) == 0 {
		// The competing booking may have been cancelled already; the retry
		// will succeed.
		conflict = requested
	}

	s.log.LogSeatConflict(ctx, showtimeID.String(), conflict)
	return &SeatConflictError{Seats: conflict}
}

func authorizeOwner(booking *Booking, actorID uuid.UUID, actorRole string) error {
	if actorRole == string(users.RoleAdmin) {
		return nil
	}
	if booking.UserID != actorID {
		return ErrNotBookingOwner
	}
	return nil
}

// authorizeStaff admits admins unconditionally and organizers only when they
// are approved and own the showtime's venue. Approval lives on the user row,
// not in the token, so it is checked here.
func (s *service) authorizeStaff(ctx context.Context, venueID uuid.UUID, staffID uuid.UUID, staffRole string) error {
	if staffRole == string(users.RoleAdmin) {
		return nil
	}
	if staffRole != string(users.RoleOrganizer) {
		return ErrNotAuthorizedForVenue
	}

	staff, err := s.userDir.GetUserByID(ctx, staffID.String())
	if err != nil {
		return ErrNotAuthorizedForVenue
	}
	if !staff.IsApproved {
		return ErrNotAuthorizedForVenue
	}

	owns, err := s.venueSvc.IsVenueOwner(ctx, venueID, staffID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotAuthorizedForVenue
	}
	return nil
}

// notify publishes a lifecycle notification after commit. Publishing is
// fire-and-forget; a broker outage must not fail the booking.
func (s *service) notify(ctx context.Context, notifType notifications.NotificationType, booking *Booking) {
	if s.producer == nil {
		return
	}

	user, err := s.userDir.GetUserByID(ctx, booking.UserID.String())
	if err != nil {
		s.log.Warn("notification recipient lookup failed",
			"booking_id", booking.ID.String(),
			"error", err.Error(),
		)
		return
	}

	notification := notifications.NewNotification(notifType, booking.UserID.String(), user.Email).
		WithBooking(booking.ID.String(), booking.Reference, booking.ShowtimeID.String(), booking.SeatLabels, booking.TotalAmount)
	notification.Name = user.FirstName

	if err := s.producer.Publish(ctx, notification); err != nil {
		s.log.Warn("notification publish failed",
			"booking_id", booking.ID.String(),
			"type", string(notifType),
			"error", err.Error(),
		)
	}
}
