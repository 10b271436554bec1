package courts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCourtNotFound = errors.New("court not found")

type Repository interface {
	Create(ctx context.Context, court *Court) error
	GetByID(ctx context.Context, id uuid.UUID) (*Court, error)
	GetActive(ctx context.Context) ([]Court, error)
	GetAll(ctx context.Context) ([]Court, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Court, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, court *Court) error {
	return r.db.WithContext(ctx).Create(court).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&court).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &court, nil
}

func (r *repository) GetActive(ctx context.Context) ([]Court, error) {
	var courts []Court
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&courts).Error
	return courts, err
}

func (r *repository) GetAll(ctx context.Context) ([]Court, error) {
	var courts []Court
	err := r.db.WithContext(ctx).Order("name ASC").Find(&courts).Error
	return courts, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Court, error) {
	result := r.db.WithContext(ctx).
		Model(&Court{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCourtNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&Court{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourtNotFound
	}
	return nil
}
