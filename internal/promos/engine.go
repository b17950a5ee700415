package promos

import (
	"math"
	"time"
)

// IsApplicable reports whether the promo can be applied at the given instant.
// All four gates must hold: active, window open on both ends where set, and
// usage cap not yet reached.
func IsApplicable(promo *PromoCode, now time.Time) bool {
	if !promo.IsActive {
		return false
	}
	if promo.ValidFrom != nil && now.Before(*promo.ValidFrom) {
		return false
	}
	if promo.ValidUntil != nil && now.After(*promo.ValidUntil) {
		return false
	}
	if promo.MaxUses != nil && promo.Uses >= *promo.MaxUses {
		return false
	}
	return true
}

// ComputeDiscount returns the discount for an order amount, rounded to two
// decimals. Zero when the order misses the promo's minimum purchase.
func ComputeDiscount(promo *PromoCode, originalAmount float64) float64 {
	if originalAmount < promo.MinPurchaseAmount {
		return 0
	}

	var discount float64
	switch promo.DiscountType {
	case DiscountTypePercentage:
		discount = originalAmount * promo.DiscountValue / 100
		if promo.MaxDiscountAmount != nil && discount > *promo.MaxDiscountAmount {
			discount = *promo.MaxDiscountAmount
		}
	case DiscountTypeFixed:
		discount = math.Min(promo.DiscountValue, originalAmount)
	}

	// A discount never exceeds the order amount, whatever the promo says.
	if discount > originalAmount {
		discount = originalAmount
	}

	return round2(discount)
}

func round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
