package promos

import (
	"errors"
	"fmt"
)

var (
	ErrPromoNotFound          = errors.New("promo code not found")
	ErrPromoInactiveOrExpired = errors.New("promo code is inactive or expired")
	ErrPromoCodeTaken         = errors.New("promo code already exists")
)

// MinPurchaseNotMetError carries how far short the order falls, so the client
// can tell the user what to add.
type MinPurchaseNotMetError struct {
	MinPurchaseAmount float64
	OrderAmount       float64
}

func (e *MinPurchaseNotMetError) Error() string {
	return fmt.Sprintf("order total %.2f is below the promo minimum %.2f (short by %.2f)",
		e.OrderAmount, e.MinPurchaseAmount, e.Shortfall())
}

func (e *MinPurchaseNotMetError) Shortfall() float64 {
	return e.MinPurchaseAmount - e.OrderAmount
}
