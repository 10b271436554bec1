package coaches

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCoachNotFound = errors.New("coach not found")

type Repository interface {
	Create(ctx context.Context, coach *Coach) error
	GetByID(ctx context.Context, id uuid.UUID) (*Coach, error)
	GetActive(ctx context.Context) ([]Coach, error)
	GetAll(ctx context.Context) ([]Coach, error)
	Update(ctx context.Context, coach *Coach) error
	ReplaceAvailability(ctx context.Context, coachID uuid.UUID, windows []CoachAvailability) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, coach *Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Coach, error) {
	var coach Coach
	err := r.db.WithContext(ctx).Preload("Availability").Where("id = ?", id).First(&coach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *repository) GetActive(ctx context.Context) ([]Coach, error) {
	var coaches []Coach
	err := r.db.WithContext(ctx).Preload("Availability").Where("is_active = ?", true).Order("name ASC").Find(&coaches).Error
	return coaches, err
}

func (r *repository) GetAll(ctx context.Context) ([]Coach, error) {
	var coaches []Coach
	err := r.db.WithContext(ctx).Preload("Availability").Order("name ASC").Find(&coaches).Error
	return coaches, err
}

func (r *repository) Update(ctx context.Context, coach *Coach) error {
	result := r.db.WithContext(ctx).Model(&Coach{}).Where("id = ?", coach.ID).Updates(map[string]interface{}{
		"name":        coach.Name,
		"specialty":   coach.Specialty,
		"hourly_rate": coach.HourlyRate,
		"is_active":   coach.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoachNotFound
	}
	return nil
}

func (r *repository) ReplaceAvailability(ctx context.Context, coachID uuid.UUID, windows []CoachAvailability) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("coach_id = ?", coachID).Delete(&CoachAvailability{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&Coach{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoachNotFound
	}
	return nil
}
