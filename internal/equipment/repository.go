package equipment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type Repository interface {
	Create(ctx context.Context, item *Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Equipment, error)
	GetActive(ctx context.Context) ([]Equipment, error)
	GetAll(ctx context.Context) ([]Equipment, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *Equipment) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	var item Equipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Equipment, error) {
	var items []Equipment
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) GetActive(ctx context.Context) ([]Equipment, error) {
	var items []Equipment
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetAll(ctx context.Context) ([]Equipment, error) {
	var items []Equipment
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Equipment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}
