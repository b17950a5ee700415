package promos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, promo *PromoCode) error
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PromoCode, error)
	List(ctx context.Context) ([]PromoCode, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	// IncrementUses bumps the usage counter on the caller's transaction
	// handle. The predicate re-checks the cap at write time so two racing
	// bookings cannot push uses past max_uses.
	IncrementUses(tx *gorm.DB, promoID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, promo *PromoCode) error {
	promo.Code = NormalizeCode(promo.Code)
	return r.db.WithContext(ctx).Create(promo).Error
}

func (r *repository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	var promo PromoCode
	err := r.db.WithContext(ctx).First(&promo, "code = ?", NormalizeCode(code)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &promo, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*PromoCode, error) {
	var promo PromoCode
	err := r.db.WithContext(ctx).First(&promo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &promo, nil
}

func (r *repository) List(ctx context.Context) ([]PromoCode, error) {
	var promos []PromoCode
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&promos).Error
	return promos, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&PromoCode{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromoNotFound
	}
	return nil
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}

func (r *repository) IncrementUses(tx *gorm.DB, promoID uuid.UUID) error {
	result := tx.Model(&PromoCode{}).
		Where("id = ? AND (max_uses IS NULL OR uses < max_uses)", promoID).
		Update("uses", gorm.Expr("uses + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Cap was reached between validation and commit
		return ErrPromoInactiveOrExpired
	}
	return nil
}
