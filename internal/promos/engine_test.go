package promos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrTime(v time.Time) *time.Time {
	return &v
}

func TestIsApplicable(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		promo PromoCode
		want  bool
	}{
		{
			name:  "active with no window or cap",
			promo: PromoCode{IsActive: true},
			want:  true,
		},
		{
			name:  "inactive",
			promo: PromoCode{IsActive: false},
			want:  false,
		},
		{
			name:  "before valid_from",
			promo: PromoCode{IsActive: true, ValidFrom: ptrTime(now.Add(time.Hour))},
			want:  false,
		},
		{
			name:  "after valid_until",
			promo: PromoCode{IsActive: true, ValidUntil: ptrTime(now.Add(-time.Hour))},
			want:  false,
		},
		{
			name: "inside window",
			promo: PromoCode{
				IsActive:   true,
				ValidFrom:  ptrTime(now.Add(-time.Hour)),
				ValidUntil: ptrTime(now.Add(time.Hour)),
			},
			want: true,
		},
		{
			name:  "usage cap reached",
			promo: PromoCode{IsActive: true, MaxUses: ptrInt(100), Uses: 100},
			want:  false,
		},
		{
			name:  "one use left",
			promo: PromoCode{IsActive: true, MaxUses: ptrInt(100), Uses: 99},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsApplicable(&tt.promo, now))
		})
	}
}

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name   string
		promo  PromoCode
		amount float64
		want   float64
	}{
		{
			name:   "percentage uncapped",
			promo:  PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 10},
			amount: 400,
			want:   40,
		},
		{
			name: "percentage hits cap",
			promo: PromoCode{
				DiscountType:      DiscountTypePercentage,
				DiscountValue:     20,
				MaxDiscountAmount: ptrFloat(100),
			},
			amount: 700,
			want:   100,
		},
		{
			name: "percentage under cap",
			promo: PromoCode{
				DiscountType:      DiscountTypePercentage,
				DiscountValue:     20,
				MaxDiscountAmount: ptrFloat(100),
			},
			amount: 400,
			want:   80,
		},
		{
			name:   "percentage over hundred clamped to order amount",
			promo:  PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 150},
			amount: 200,
			want:   200,
		},
		{
			name:   "fixed smaller than order",
			promo:  PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: 50},
			amount: 200,
			want:   50,
		},
		{
			name:   "fixed clamped to order amount",
			promo:  PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: 50},
			amount: 30,
			want:   30,
		},
		{
			name:   "below minimum purchase",
			promo:  PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 20, MinPurchaseAmount: 500},
			amount: 499.99,
			want:   0,
		},
		{
			name:   "exactly at minimum purchase",
			promo:  PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 20, MinPurchaseAmount: 500},
			amount: 500,
			want:   100,
		},
		{
			name:   "rounded to two decimals",
			promo:  PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 15},
			amount: 333.33,
			want:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeDiscount(&tt.promo, tt.amount), 1e-9)
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE20", NormalizeCode("save20"))
	assert.Equal(t, "SAVE20", NormalizeCode("  Save20  "))
}

func TestMinPurchaseNotMetError(t *testing.T) {
	err := &MinPurchaseNotMetError{MinPurchaseAmount: 500, OrderAmount: 420}
	assert.InDelta(t, 80, err.Shortfall(), 1e-9)
	assert.Contains(t, err.Error(), "500")
}
