// Package pricing resolves requested seats to tier prices. It is pure: the
// caller supplies the screen layout and the showtime's tier table, and the
// same inputs always produce the same quote.
package pricing

import (
	"fmt"
	"math"

	"showtix/internal/showtimes"
	"showtix/internal/venues"
)

// UnpricedSeatError reports a seat whose resolved type matches no tier and for
// which no Normal fallback tier exists. That is a data-integrity fault in the
// showtime's tier table, not a free seat.
type UnpricedSeatError struct {
	SeatLabel string
	SeatType  string
}

func (e *UnpricedSeatError) Error() string {
	return fmt.Sprintf("no price tier for seat %s (type %s) and no Normal fallback", e.SeatLabel, e.SeatType)
}

// SeatPrice is one seat's resolved type and price.
type SeatPrice struct {
	SeatLabel string  `json:"seat_label"`
	SeatType  string  `json:"seat_type"`
	Price     float64 `json:"price"`
}

// Quote is the priced seat set before any discount.
type Quote struct {
	Seats          []SeatPrice `json:"seats"`
	OriginalAmount float64     `json:"original_amount"`
}

// Calculate maps each seat to its row's seat type via the layout, then to a
// price by exact tier match, falling back to the Normal tier for types with
// no tier of their own.
func Calculate(seatLabels []string, layout venues.Layout, showtime *showtimes.Showtime) (Quote, error) {
	quote := Quote{Seats: make([]SeatPrice, 0, len(seatLabels))}

	for _, label := range seatLabels {
		seatType := layout.ResolveSeatType(label)

		tier, found := showtime.TierFor(seatType)
		if !found {
			tier, found = showtime.TierFor(venues.SeatTypeNormal)
		}
		if !found {
			return Quote{}, &UnpricedSeatError{SeatLabel: label, SeatType: seatType}
		}

		quote.Seats = append(quote.Seats, SeatPrice{
			SeatLabel: label,
			SeatType:  seatType,
			Price:     tier.Price,
		})
		quote.OriginalAmount += tier.Price
	}

	quote.OriginalAmount = Round2(quote.OriginalAmount)
	return quote, nil
}

// Round2 rounds to currency minor-unit precision.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
