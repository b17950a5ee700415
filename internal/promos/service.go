package promos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreatePromo(ctx context.Context, req CreatePromoRequest) (*PromoCode, error)
	GetPromo(ctx context.Context, id uuid.UUID) (*PromoCode, error)
	ListPromos(ctx context.Context) ([]PromoCode, error)
	UpdatePromo(ctx context.Context, id uuid.UUID, req UpdatePromoRequest) (*PromoCode, error)
	DeactivatePromo(ctx context.Context, id uuid.UUID) error

	// Validate resolves a code and computes its discount for an order amount.
	// Returns the distinct promo failures the booking flow surfaces to users.
	Validate(ctx context.Context, code string, orderAmount float64, now time.Time) (*PromoCode, float64, error)

	// ConsumeUse records one successful application inside the booking
	// transaction.
	ConsumeUse(tx *gorm.DB, promoID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePromo(ctx context.Context, req CreatePromoRequest) (*PromoCode, error) {
	if existing, err := s.repo.GetByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, ErrPromoCodeTaken
	}

	promo := &PromoCode{
		Code:              NormalizeCode(req.Code),
		DiscountType:      DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
		MaxUses:           req.MaxUses,
		IsActive:          true,
	}

	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *service) GetPromo(ctx context.Context, id uuid.UUID) (*PromoCode, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPromos(ctx context.Context) ([]PromoCode, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdatePromo(ctx context.Context, id uuid.UUID, req UpdatePromoRequest) (*PromoCode, error) {
	updates := map[string]interface{}{}
	if req.DiscountValue != nil {
		updates["discount_value"] = *req.DiscountValue
	}
	if req.MinPurchaseAmount != nil {
		updates["min_purchase_amount"] = *req.MinPurchaseAmount
	}
	if req.MaxDiscountAmount != nil {
		updates["max_discount_amount"] = *req.MaxDiscountAmount
	}
	if req.ValidFrom != nil {
		updates["valid_from"] = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		updates["valid_until"] = *req.ValidUntil
	}
	if req.MaxUses != nil {
		updates["max_uses"] = *req.MaxUses
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) DeactivatePromo(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *service) Validate(ctx context.Context, code string, orderAmount float64, now time.Time) (*PromoCode, float64, error) {
	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, 0, err
	}

	if !IsApplicable(promo, now) {
		return nil, 0, ErrPromoInactiveOrExpired
	}

	if orderAmount < promo.MinPurchaseAmount {
		return nil, 0, &MinPurchaseNotMetError{
			MinPurchaseAmount: promo.MinPurchaseAmount,
			OrderAmount:       orderAmount,
		}
	}

	return promo, ComputeDiscount(promo, orderAmount), nil
}

func (s *service) ConsumeUse(tx *gorm.DB, promoID uuid.UUID) error {
	return s.repo.IncrementUses(tx, promoID)
}
