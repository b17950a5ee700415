package bookings

import (
	"context"
	"sort"
	"testing"
	"time"

	"showtix/internal/promos"
	"showtix/internal/shared/config"
	"showtix/internal/showtimes"
	"showtix/internal/users"
	"showtix/internal/venues"
	"showtix/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ============= Fakes =============

// fakeShowtimeRepo keeps seat claims in memory. The embedded interface covers
// the methods the booking flow never touches.
type fakeShowtimeRepo struct {
	showtimes.Repository
	showtime *showtimes.Showtime
	claimed  map[string]uuid.UUID
}

func (f *fakeShowtimeRepo) GetByID(ctx context.Context, id uuid.UUID) (*showtimes.Showtime, error) {
	if f.showtime == nil || f.showtime.ID != id {
		return nil, showtimes.ErrShowtimeNotFound
	}
	return f.showtime, nil
}

func (f *fakeShowtimeRepo) ClaimSeats(tx *gorm.DB, showtimeID uuid.UUID, bookingID uuid.UUID, seatLabels []string) error {
	for _, label := range seatLabels {
		if _, taken := f.claimed[label]; taken {
			return showtimes.ErrSeatsAlreadyClaimed
		}
	}
	for _, label := range seatLabels {
		f.claimed[label] = bookingID
	}
	return nil
}

func (f *fakeShowtimeRepo) ReleaseSeats(tx *gorm.DB, showtimeID uuid.UUID, bookingID uuid.UUID) error {
	for label, owner := range f.claimed {
		if owner == bookingID {
			delete(f.claimed, label)
		}
	}
	return nil
}

func (f *fakeShowtimeRepo) GetBookedSeatLabels(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	labels := make([]string, 0, len(f.claimed))
	for label := range f.claimed {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

// fakeBookingRepo snapshots all transactional state before running the
// closure and restores it on error, mimicking a database rollback.
type fakeBookingRepo struct {
	store    map[uuid.UUID]*Booking
	seats    *fakeShowtimeRepo
	promoSvc *fakePromoSvc
}

func (f *fakeBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	seatSnapshot := make(map[string]uuid.UUID, len(f.seats.claimed))
	for k, v := range f.seats.claimed {
		seatSnapshot[k] = v
	}
	storeSnapshot := make(map[uuid.UUID]*Booking, len(f.store))
	for k, v := range f.store {
		copied := *v
		storeSnapshot[k] = &copied
	}
	var usesSnapshot int
	if f.promoSvc != nil && f.promoSvc.promo != nil {
		usesSnapshot = f.promoSvc.promo.Uses
	}

	if err := fn(nil); err != nil {
		f.seats.claimed = seatSnapshot
		f.store = storeSnapshot
		if f.promoSvc != nil && f.promoSvc.promo != nil {
			f.promoSvc.promo.Uses = usesSnapshot
		}
		return err
	}
	return nil
}

func (f *fakeBookingRepo) CreateInTx(tx *gorm.DB, booking *Booking) error {
	f.store[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.store[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	for _, booking := range f.store {
		if booking.Reference == reference {
			return booking, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var list []Booking
	for _, booking := range f.store {
		if booking.UserID == userID {
			list = append(list, *booking)
		}
	}
	return list, nil
}

func (f *fakeBookingRepo) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	for _, booking := range f.store {
		if booking.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) UpdateStatusInTx(tx *gorm.DB, id uuid.UUID, from Status, to Status, extra map[string]interface{}) error {
	booking, ok := f.store[id]
	if !ok || booking.Status != from {
		return ErrInvalidStatus
	}
	booking.Status = to
	if v, ok := extra["is_checked_in"].(bool); ok {
		booking.IsCheckedIn = v
	}
	if v, ok := extra["check_in_time"].(time.Time); ok {
		booking.CheckInTime = &v
	}
	if v, ok := extra["checked_in_by"].(uuid.UUID); ok {
		booking.CheckedInBy = &v
	}
	return nil
}

type fakePromoSvc struct {
	promos.Service
	promo      *promos.PromoCode
	consumeErr error
}

func (f *fakePromoSvc) Validate(ctx context.Context, code string, orderAmount float64, now time.Time) (*promos.PromoCode, float64, error) {
	if f.promo == nil || promos.NormalizeCode(code) != f.promo.Code {
		return nil, 0, promos.ErrPromoNotFound
	}
	if !promos.IsApplicable(f.promo, now) {
		return nil, 0, promos.ErrPromoInactiveOrExpired
	}
	if orderAmount < f.promo.MinPurchaseAmount {
		return nil, 0, &promos.MinPurchaseNotMetError{
			MinPurchaseAmount: f.promo.MinPurchaseAmount,
			OrderAmount:       orderAmount,
		}
	}
	return f.promo, promos.ComputeDiscount(f.promo, orderAmount), nil
}

func (f *fakePromoSvc) ConsumeUse(tx *gorm.DB, promoID uuid.UUID) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}
	f.promo.Uses++
	return nil
}

type fakeVenueSvc struct {
	venues.Service
	layout    venues.Layout
	layoutErr error
	owners    map[uuid.UUID]bool
}

func (f *fakeVenueSvc) GetScreenLayout(ctx context.Context, screenID uuid.UUID) (venues.Layout, error) {
	if f.layoutErr != nil {
		return venues.Layout{}, f.layoutErr
	}
	return f.layout, nil
}

func (f *fakeVenueSvc) IsVenueOwner(ctx context.Context, venueID uuid.UUID, actorID uuid.UUID) (bool, error) {
	return f.owners[actorID], nil
}

type fakeShowtimeSvc struct {
	showtimes.Service
	invalidations int
}

func (f *fakeShowtimeSvc) InvalidateSeatMap(ctx context.Context, id uuid.UUID) {
	f.invalidations++
}

type fakeUserDir struct {
	users map[string]*users.User
}

func (f *fakeUserDir) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return user, nil
}

// ============= Fixture =============

type fixture struct {
	svc      Service
	repo     *fakeBookingRepo
	seats    *fakeShowtimeRepo
	stSvc    *fakeShowtimeSvc
	venueSvc *fakeVenueSvc
	promoSvc *fakePromoSvc
	userDir  *fakeUserDir
	cfg      *config.Config

	showtime  *showtimes.Showtime
	customer  *users.User
	organizer *users.User
	admin     *users.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	showtime := &showtimes.Showtime{
		ID:        uuid.New(),
		VenueID:   uuid.New(),
		ScreenID:  uuid.New(),
		ItemType:  showtimes.ItemTypeMovie,
		StartTime: time.Now().Add(48 * time.Hour),
		EndTime:   time.Now().Add(50 * time.Hour),
		IsActive:  true,
		PriceTiers: []showtimes.PriceTier{
			{SeatType: "Normal", Price: 200},
			{SeatType: "VIP", Price: 500},
		},
	}

	customer := &users.User{ID: uuid.New(), FirstName: "Casey", Email: "casey@example.com", Role: users.RoleUser, IsApproved: true}
	organizer := &users.User{ID: uuid.New(), FirstName: "Omar", Email: "omar@example.com", Role: users.RoleOrganizer, IsApproved: true}
	admin := &users.User{ID: uuid.New(), FirstName: "Ava", Email: "ava@example.com", Role: users.RoleAdmin, IsApproved: true}

	seats := &fakeShowtimeRepo{showtime: showtime, claimed: map[string]uuid.UUID{}}
	promoSvc := &fakePromoSvc{}
	repo := &fakeBookingRepo{store: map[uuid.UUID]*Booking{}, seats: seats, promoSvc: promoSvc}
	stSvc := &fakeShowtimeSvc{}
	venueSvc := &fakeVenueSvc{
		layout: venues.NewLayout([]venues.ScreenRow{
			{RowLabel: "A", SeatType: "Normal", SeatCount: 12},
			{RowLabel: "D", SeatType: "VIP", SeatCount: 10},
		}),
		owners: map[uuid.UUID]bool{organizer.ID: true},
	}
	userDir := &fakeUserDir{users: map[string]*users.User{
		customer.ID.String():  customer,
		organizer.ID.String(): organizer,
		admin.ID.String():     admin,
	}}

	cfg := &config.Config{
		Booking: config.BookingConfig{
			CancellationCutoff: 2 * time.Hour,
			CheckInOpensBefore: time.Hour,
			MaxSeatsPerBooking: 10,
			RefMaxAttempts:     5,
		},
	}

	svc := NewService(
		repo, seats, stSvc, venueSvc, promoSvc, userDir,
		NewReferenceGenerator(cfg.Booking.RefMaxAttempts),
		nil, // no notification pipeline in tests
		cfg,
		logger.GetDefault(),
	)

	return &fixture{
		svc: svc, repo: repo, seats: seats, stSvc: stSvc,
		venueSvc: venueSvc, promoSvc: promoSvc, userDir: userDir, cfg: cfg,
		showtime: showtime, customer: customer, organizer: organizer, admin: admin,
	}
}

func (f *fixture) book(t *testing.T, seats ...string) *BookingResponse {
	t.Helper()
	resp, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      seats,
	})
	require.NoError(t, err)
	return resp
}

// ============= CreateBooking =============

func TestCreateBookingSuccess(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      []string{"A1", "D5"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(StatusConfirmed), resp.Status)
	assert.Len(t, resp.Reference, 6)
	assert.InDelta(t, 700, resp.OriginalAmount, 1e-9)
	assert.InDelta(t, 0, resp.DiscountAmount, 1e-9)
	assert.InDelta(t, 700, resp.TotalAmount, 1e-9)
	assert.ElementsMatch(t, []string{"A1", "D5"}, resp.Seats)

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.ElementsMatch(t, []string{"A1", "D5"}, booked)
	assert.Equal(t, 1, f.stSvc.invalidations, "seat map cache invalidated after commit")
}

func TestCreateBookingNormalizesSeatLabels(t *testing.T) {
	f := newFixture(t)

	resp := f.book(t, " a1 ", "d5")
	assert.ElementsMatch(t, []string{"A1", "D5"}, resp.Seats)
}

func TestCreateBookingWithPromo(t *testing.T) {
	f := newFixture(t)
	maxDiscount := 100.0
	f.promoSvc.promo = &promos.PromoCode{
		ID:                uuid.New(),
		Code:              "SAVE20",
		DiscountType:      promos.DiscountTypePercentage,
		DiscountValue:     20,
		MinPurchaseAmount: 500,
		MaxDiscountAmount: &maxDiscount,
		IsActive:          true,
	}

	resp, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      []string{"A1", "D5"}, // 700
		PromoCode:  "save20",
	})
	require.NoError(t, err)

	assert.InDelta(t, 700, resp.OriginalAmount, 1e-9)
	assert.InDelta(t, 100, resp.DiscountAmount, 1e-9, "20 percent of 700 capped at 100")
	assert.InDelta(t, 600, resp.TotalAmount, 1e-9)
	assert.Equal(t, "SAVE20", resp.PromoCode)
	assert.Equal(t, 1, f.promoSvc.promo.Uses, "use consumed inside the transaction")
}

func TestCreateBookingPromoNeverDrivesTotalNegative(t *testing.T) {
	f := newFixture(t)
	f.promoSvc.promo = &promos.PromoCode{
		ID:            uuid.New(),
		Code:          "MEGA150",
		DiscountType:  promos.DiscountTypePercentage,
		DiscountValue: 150,
		IsActive:      true,
	}

	resp, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      []string{"A1"}, // 200
		PromoCode:  "MEGA150",
	})
	require.NoError(t, err)

	assert.Equal(t, string(StatusConfirmed), resp.Status)
	assert.InDelta(t, 200, resp.OriginalAmount, 1e-9)
	assert.InDelta(t, 200, resp.DiscountAmount, 1e-9, "discount clamped to the order amount")
	assert.InDelta(t, 0, resp.TotalAmount, 1e-9, "total never goes below zero")
}

func TestCreateBookingPromoBelowMinimum(t *testing.T) {
	f := newFixture(t)
	f.promoSvc.promo = &promos.PromoCode{
		ID:                uuid.New(),
		Code:              "SAVE20",
		DiscountType:      promos.DiscountTypePercentage,
		DiscountValue:     20,
		MinPurchaseAmount: 500,
		IsActive:          true,
	}

	_, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      []string{"A1"}, // 200, below the 500 minimum
		PromoCode:  "SAVE20",
	})

	var minErr *promos.MinPurchaseNotMetError
	require.ErrorAs(t, err, &minErr)
	assert.InDelta(t, 300, minErr.Shortfall(), 1e-9)

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.Empty(t, booked, "promo is validated before any seat is claimed")
}

func TestCreateBookingSeatConflictNamesContestedSeats(t *testing.T) {
	f := newFixture(t)
	first := f.book(t, "A1", "A2")
	require.NotNil(t, first)

	_, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      []string{"A2", "A3"},
	})

	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"A2"}, conflict.Seats, "only the contested seat is reported")

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.ElementsMatch(t, []string{"A1", "A2"}, booked, "losing claim left nothing behind")
	assert.Len(t, f.repo.store, 1, "no booking row for the losing request")
}

func TestCreateBookingRollsBackClaimOnPromoFailure(t *testing.T) {
	f := newFixture(t)
	f.promoSvc.promo = &promos.PromoCode{
		ID:            uuid.New(),
		Code:          "SAVE20",
		DiscountType:  promos.DiscountTypePercentage,
		DiscountValue: 20,
		IsActive:      true,
	}
	// Cap reached between validation and commit.
	f.promoSvc.consumeErr = promos.ErrPromoInactiveOrExpired

	_, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
		ShowtimeID: f.showtime.ID,
		Seats:      []string{"A1", "D5"},
		PromoCode:  "SAVE20",
	})
	require.ErrorIs(t, err, promos.ErrPromoInactiveOrExpired)

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.Empty(t, booked, "claimed seats released by the rollback")
	assert.Empty(t, f.repo.store, "booking insert rolled back")
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name     string
		seats    []string
		mutate   func(*fixture)
		checkErr func(*testing.T, error)
	}{
		{
			name:  "showtime not found",
			seats: []string{"A1"},
			mutate: func(f *fixture) {
				f.seats.showtime = nil
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, showtimes.ErrShowtimeNotFound)
			},
		},
		{
			name:  "inactive showtime",
			seats: []string{"A1"},
			mutate: func(f *fixture) {
				f.showtime.IsActive = false
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrShowtimeInactive)
			},
		},
		{
			name:  "no price tiers",
			seats: []string{"A1"},
			mutate: func(f *fixture) {
				f.showtime.PriceTiers = nil
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrPricingUnavailable)
			},
		},
		{
			name:   "duplicate seats",
			seats:  []string{"A1", "a1"},
			mutate: func(f *fixture) {},
			checkErr: func(t *testing.T, err error) {
				var invalid *InvalidSeatsError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, []string{"A1"}, invalid.Seats)
			},
		},
		{
			name:   "seat outside layout",
			seats:  []string{"A1", "Z9"},
			mutate: func(f *fixture) {},
			checkErr: func(t *testing.T, err error) {
				var invalid *InvalidSeatsError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, []string{"Z9"}, invalid.Seats)
			},
		},
		{
			name:  "too many seats",
			seats: []string{"A1", "A2", "A3"},
			mutate: func(f *fixture) {
				f.cfg.Booking.MaxSeatsPerBooking = 2
			},
			checkErr: func(t *testing.T, err error) {
				var invalid *InvalidSeatsError
				assert.ErrorAs(t, err, &invalid)
			},
		},
		{
			name:  "layout unavailable",
			seats: []string{"A1"},
			mutate: func(f *fixture) {
				f.venueSvc.layoutErr = venues.ErrScreenNotFound
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrLayoutMissing)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mutate(f)

			_, err := f.svc.CreateBooking(context.Background(), f.customer.ID, CreateBookingRequest{
				ShowtimeID: f.showtime.ID,
				Seats:      tt.seats,
			})
			require.Error(t, err)
			tt.checkErr(t, err)

			booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
			assert.Empty(t, booked)
		})
	}
}

// ============= Cancellation =============

func TestCancelBookingReleasesSeats(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1", "A2")
	bookingID := uuid.MustParse(resp.ID)

	cancelled, err := f.svc.CancelBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), cancelled.Status)

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.Empty(t, booked, "cancelled seats go back on sale")

	// The freed seats can be claimed again.
	again := f.book(t, "A1")
	assert.Equal(t, string(StatusConfirmed), again.Status)
}

func TestCancelBookingFromPaymentPending(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1", "A2")
	bookingID := uuid.MustParse(resp.ID)
	f.repo.store[bookingID].Status = StatusPaymentPending

	cancelled, err := f.svc.CancelBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), cancelled.Status)

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.Empty(t, booked, "seats released while payment was still pending")
}

func TestCancelBookingTooCloseToShowtime(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	bookingID := uuid.MustParse(resp.ID)

	// Inside the two hour cutoff.
	f.showtime.StartTime = time.Now().Add(30 * time.Minute)

	_, err := f.svc.CancelBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	assert.ErrorIs(t, err, ErrTooCloseToShowtime)

	booked, _ := f.seats.GetBookedSeatLabels(context.Background(), f.showtime.ID)
	assert.Equal(t, []string{"A1"}, booked, "seats stay claimed")
}

func TestCancelBookingAuthorization(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	bookingID := uuid.MustParse(resp.ID)

	stranger := uuid.New()
	_, err := f.svc.CancelBooking(context.Background(), bookingID, stranger, string(users.RoleUser))
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	// Admins may cancel any booking.
	_, err = f.svc.CancelBooking(context.Background(), bookingID, f.admin.ID, string(users.RoleAdmin))
	assert.NoError(t, err)
}

func TestCancelBookingTerminalStates(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	bookingID := uuid.MustParse(resp.ID)

	_, err := f.svc.CancelBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

// ============= Check-in =============

func openCheckInWindow(f *fixture) {
	f.showtime.StartTime = time.Now().Add(30 * time.Minute)
	f.showtime.EndTime = time.Now().Add(3 * time.Hour)
}

func TestCheckInByAdmin(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1", "A2")
	openCheckInWindow(f)

	result, err := f.svc.CheckIn(context.Background(), resp.Reference, f.admin.ID, string(users.RoleAdmin))
	require.NoError(t, err)

	assert.Equal(t, resp.Reference, result.Reference)
	assert.ElementsMatch(t, []string{"A1", "A2"}, result.Seats)
	assert.Equal(t, f.admin.ID.String(), result.CheckedInBy)

	stored, err := f.repo.GetByReference(context.Background(), resp.Reference)
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, stored.Status)
	assert.True(t, stored.IsCheckedIn)
	require.NotNil(t, stored.CheckInTime)
}

func TestCheckInSecondScanRejected(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	openCheckInWindow(f)

	_, err := f.svc.CheckIn(context.Background(), resp.Reference, f.admin.ID, string(users.RoleAdmin))
	require.NoError(t, err)

	_, err = f.svc.CheckIn(context.Background(), resp.Reference, f.admin.ID, string(users.RoleAdmin))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckInWindow(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")

	// Default fixture showtime starts in 48h; the window has not opened.
	_, err := f.svc.CheckIn(context.Background(), resp.Reference, f.admin.ID, string(users.RoleAdmin))
	assert.ErrorIs(t, err, ErrCheckInWindowClosed)

	// Showtime already over.
	f.showtime.StartTime = time.Now().Add(-4 * time.Hour)
	f.showtime.EndTime = time.Now().Add(-time.Hour)
	_, err = f.svc.CheckIn(context.Background(), resp.Reference, f.admin.ID, string(users.RoleAdmin))
	assert.ErrorIs(t, err, ErrCheckInWindowClosed)
}

func TestCheckInByOrganizer(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	openCheckInWindow(f)

	// Approved organizer owning the venue.
	_, err := f.svc.CheckIn(context.Background(), resp.Reference, f.organizer.ID, string(users.RoleOrganizer))
	assert.NoError(t, err)
}

func TestCheckInOrganizerNotVenueOwner(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	openCheckInWindow(f)

	other := &users.User{ID: uuid.New(), Role: users.RoleOrganizer, IsApproved: true}
	f.userDir.users[other.ID.String()] = other

	_, err := f.svc.CheckIn(context.Background(), resp.Reference, other.ID, string(users.RoleOrganizer))
	assert.ErrorIs(t, err, ErrNotAuthorizedForVenue)
}

func TestCheckInUnapprovedOrganizerRejected(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	openCheckInWindow(f)

	f.organizer.IsApproved = false

	_, err := f.svc.CheckIn(context.Background(), resp.Reference, f.organizer.ID, string(users.RoleOrganizer))
	assert.ErrorIs(t, err, ErrNotAuthorizedForVenue)
}

func TestCheckInCancelledBooking(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	bookingID := uuid.MustParse(resp.ID)

	_, err := f.svc.CancelBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	require.NoError(t, err)
	openCheckInWindow(f)

	_, err = f.svc.CheckIn(context.Background(), resp.Reference, f.admin.ID, string(users.RoleAdmin))
	assert.ErrorIs(t, err, ErrCannotCheckInCancelled)
}

// ============= Reads =============

func TestGetBookingAuthorization(t *testing.T) {
	f := newFixture(t)
	resp := f.book(t, "A1")
	bookingID := uuid.MustParse(resp.ID)

	_, err := f.svc.GetBooking(context.Background(), bookingID, f.customer.ID, string(users.RoleUser))
	assert.NoError(t, err)

	_, err = f.svc.GetBooking(context.Background(), bookingID, uuid.New(), string(users.RoleUser))
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	_, err = f.svc.GetBooking(context.Background(), bookingID, f.admin.ID, string(users.RoleAdmin))
	assert.NoError(t, err)
}

func TestListUserBookings(t *testing.T) {
	f := newFixture(t)
	f.book(t, "A1")
	f.book(t, "A2")

	list, err := f.svc.ListUserBookings(context.Background(), f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := f.svc.ListUserBookings(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
