package promos

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type PromoCode struct {
	ID                uuid.UUID    `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Code              string       `json:"code" gorm:"uniqueIndex;not null;size:50"`
	DiscountType      DiscountType `json:"discount_type" gorm:"type:varchar(20);not null"`
	DiscountValue     float64      `json:"discount_value" gorm:"not null;check:discount_value >= 0"`
	MinPurchaseAmount float64      `json:"min_purchase_amount" gorm:"not null;default:0"`
	MaxDiscountAmount *float64     `json:"max_discount_amount,omitempty"` // cap, percentage type only
	ValidFrom         *time.Time   `json:"valid_from,omitempty"`
	ValidUntil        *time.Time   `json:"valid_until,omitempty"`
	MaxUses           *int         `json:"max_uses,omitempty"`
	Uses              int          `json:"uses" gorm:"not null;default:0"`
	IsActive          bool         `json:"is_active" gorm:"not null;default:true"`
	CreatedAt         time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// NormalizeCode maps user input to the stored code form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type CreatePromoRequest struct {
	Code              string     `json:"code" binding:"required,min=2,max=50"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64    `json:"discount_value" binding:"required,min=0"`
	MinPurchaseAmount float64    `json:"min_purchase_amount" binding:"min=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty,min=0"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	MaxUses           *int       `json:"max_uses" binding:"omitempty,min=1"`
}

type UpdatePromoRequest struct {
	DiscountValue     *float64   `json:"discount_value" binding:"omitempty,min=0"`
	MinPurchaseAmount *float64   `json:"min_purchase_amount" binding:"omitempty,min=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty,min=0"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	MaxUses           *int       `json:"max_uses" binding:"omitempty,min=1"`
	IsActive          *bool      `json:"is_active"`
}

// TableName specifies the table name for GORM
func (PromoCode) TableName() string {
	return "promo_codes"
}
