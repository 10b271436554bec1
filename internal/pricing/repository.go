package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRuleNotFound = errors.New("pricing rule not found")

type Repository interface {
	Create(ctx context.Context, rule *PricingRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*PricingRule, error)
	GetActive(ctx context.Context) ([]PricingRule, error)
	GetAll(ctx context.Context) ([]PricingRule, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rule *PricingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*PricingRule, error) {
	var rule PricingRule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (r *repository) GetActive(ctx context.Context) ([]PricingRule, error) {
	var rules []PricingRule
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("priority ASC").Find(&rules).Error
	return rules, err
}

func (r *repository) GetAll(ctx context.Context) ([]PricingRule, error) {
	var rules []PricingRule
	err := r.db.WithContext(ctx).Order("priority ASC").Find(&rules).Error
	return rules, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&PricingRule{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PricingRule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
