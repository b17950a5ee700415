package pricing

import (
	"testing"

	"showtix/internal/showtimes"
	"showtix/internal/venues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() venues.Layout {
	return venues.NewLayout([]venues.ScreenRow{
		{RowLabel: "A", SeatType: "Normal", SeatCount: 12},
		{RowLabel: "B", SeatType: "Premium", SeatCount: 12},
		{RowLabel: "D", SeatType: "VIP", SeatCount: 10},
	})
}

func testShowtime(tiers ...showtimes.PriceTier) *showtimes.Showtime {
	return &showtimes.Showtime{PriceTiers: tiers}
}

func TestCalculateMixedTiers(t *testing.T) {
	showtime := testShowtime(
		showtimes.PriceTier{SeatType: "Normal", Price: 200},
		showtimes.PriceTier{SeatType: "VIP", Price: 500},
	)

	quote, err := Calculate([]string{"A1", "D5"}, testLayout(), showtime)
	require.NoError(t, err)

	assert.InDelta(t, 700, quote.OriginalAmount, 1e-9)
	require.Len(t, quote.Seats, 2)
	assert.Equal(t, SeatPrice{SeatLabel: "A1", SeatType: "Normal", Price: 200}, quote.Seats[0])
	assert.Equal(t, SeatPrice{SeatLabel: "D5", SeatType: "VIP", Price: 500}, quote.Seats[1])
}

func TestCalculateNormalFallback(t *testing.T) {
	// Premium has no tier of its own; it prices at the Normal tier.
	showtime := testShowtime(showtimes.PriceTier{SeatType: "Normal", Price: 150})

	quote, err := Calculate([]string{"B3"}, testLayout(), showtime)
	require.NoError(t, err)

	require.Len(t, quote.Seats, 1)
	assert.Equal(t, "Premium", quote.Seats[0].SeatType)
	assert.InDelta(t, 150, quote.Seats[0].Price, 1e-9)
}

func TestCalculateUnpricedSeat(t *testing.T) {
	// VIP seat, VIP tier absent and no Normal fallback either.
	showtime := testShowtime(showtimes.PriceTier{SeatType: "Premium", Price: 350})

	_, err := Calculate([]string{"D2"}, testLayout(), showtime)

	var unpriced *UnpricedSeatError
	require.ErrorAs(t, err, &unpriced)
	assert.Equal(t, "D2", unpriced.SeatLabel)
	assert.Equal(t, "VIP", unpriced.SeatType)
}

func TestCalculateDeterministic(t *testing.T) {
	showtime := testShowtime(
		showtimes.PriceTier{SeatType: "Normal", Price: 199.99},
		showtimes.PriceTier{SeatType: "VIP", Price: 499.99},
	)
	seats := []string{"A1", "A2", "D1"}

	first, err := Calculate(seats, testLayout(), showtime)
	require.NoError(t, err)
	second, err := Calculate(seats, testLayout(), showtime)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, 899.97, first.OriginalAmount, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 0.1, Round2(0.1+0.2-0.2), 1e-9)
	assert.InDelta(t, 123.46, Round2(123.456), 1e-9)
	assert.InDelta(t, 123.45, Round2(123.454), 1e-9)
}
