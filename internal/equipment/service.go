package equipment

import (
	"context"
	"errors"
	"time"

	"courtly/pkg/cache"
	"courtly/pkg/logger"

	"github.com/google/uuid"
)

var ErrInvalidEquipmentType = errors.New("invalid equipment type")

const (
	activeEquipmentCacheKey = "courtly:equipment:active"
	equipmentCacheTTL       = 5 * time.Minute
)

type Service interface {
	CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*Equipment, error)
	GetActiveEquipment(ctx context.Context) ([]Equipment, error)
	GetAllEquipment(ctx context.Context) ([]Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, req UpdateEquipmentRequest) (*Equipment, error)
	DeactivateEquipment(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   logger.GetDefault(),
	}
}

func (s *service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	equipmentType := EquipmentType(req.EquipmentType)
	if !equipmentType.IsValid() {
		return nil, ErrInvalidEquipmentType
	}

	item := &Equipment{
		Name:          req.Name,
		EquipmentType: equipmentType,
		TotalQuantity: req.TotalQuantity,
		HourlyRate:    req.HourlyRate,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return item, nil
}

func (s *service) GetEquipment(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetActiveEquipment(ctx context.Context) ([]Equipment, error) {
	var items []Equipment
	err := s.cache.GetOrSet(ctx, activeEquipmentCacheKey, equipmentCacheTTL, func() (interface{}, error) {
		return s.repo.GetActive(ctx)
	}, &items)
	if err != nil {
		return s.repo.GetActive(ctx)
	}
	return items, nil
}

func (s *service) GetAllEquipment(ctx context.Context) ([]Equipment, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) UpdateEquipment(ctx context.Context, id uuid.UUID, req UpdateEquipmentRequest) (*Equipment, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.TotalQuantity != nil {
		updates["total_quantity"] = *req.TotalQuantity
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeactivateEquipment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, activeEquipmentCacheKey); err != nil {
		s.log.Warn("failed to invalidate equipment cache", "error", err)
	}
}
