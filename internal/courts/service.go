package courts

import (
	"context"
	"errors"
	"strings"
	"time"

	"courtly/pkg/cache"

	"github.com/google/uuid"
)

const activeCourtsCacheKey = "courtly:courts:active"

type Service interface {
	GetActiveCourts(ctx context.Context) ([]CourtResponse, error)
	GetCourtByID(ctx context.Context, id string) (*CourtResponse, error)

	// Admin operations
	CreateCourt(ctx context.Context, req CreateCourtRequest) (*CourtResponse, error)
	UpdateCourt(ctx context.Context, id string, req UpdateCourtRequest) (*CourtResponse, error)
	DeactivateCourt(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) GetActiveCourts(ctx context.Context) ([]CourtResponse, error) {
	var responses []CourtResponse

	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, activeCourtsCacheKey, s.cacheTTL, func() (interface{}, error) {
			return s.fetchActiveCourts(ctx)
		}, &responses)
		if err == nil {
			return responses, nil
		}
		// Fall through to a direct read when the cache path fails
	}

	return s.fetchActiveCourts(ctx)
}

func (s *service) fetchActiveCourts(ctx context.Context) ([]CourtResponse, error) {
	courts, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CourtResponse, 0, len(courts))
	for i := range courts {
		responses = append(responses, courts[i].ToResponse())
	}
	return responses, nil
}

func (s *service) GetCourtByID(ctx context.Context, id string) (*CourtResponse, error) {
	courtID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrCourtNotFound
	}

	court, err := s.repo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	resp := court.ToResponse()
	return &resp, nil
}

func (s *service) CreateCourt(ctx context.Context, req CreateCourtRequest) (*CourtResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("court name cannot be empty")
	}

	courtType := CourtType(req.CourtType)
	if !courtType.IsValid() {
		return nil, errors.New("court type must be indoor or outdoor")
	}

	court := &Court{
		Name:           name,
		CourtType:      courtType,
		BaseHourlyRate: req.BaseHourlyRate,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, court); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	resp := court.ToResponse()
	return &resp, nil
}

func (s *service) UpdateCourt(ctx context.Context, id string, req UpdateCourtRequest) (*CourtResponse, error) {
	courtID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrCourtNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.CourtType != nil {
		courtType := CourtType(*req.CourtType)
		if !courtType.IsValid() {
			return nil, errors.New("court type must be indoor or outdoor")
		}
		updates["court_type"] = courtType
	}
	if req.BaseHourlyRate != nil {
		if *req.BaseHourlyRate < 0 {
			return nil, errors.New("base hourly rate cannot be negative")
		}
		updates["base_hourly_rate"] = *req.BaseHourlyRate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return s.GetCourtByID(ctx, id)
	}

	court, err := s.repo.Update(ctx, courtID, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	resp := court.ToResponse()
	return &resp, nil
}

func (s *service) DeactivateCourt(ctx context.Context, id string) error {
	courtID, err := uuid.Parse(id)
	if err != nil {
		return ErrCourtNotFound
	}

	if err := s.repo.Deactivate(ctx, courtID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, activeCourtsCacheKey)
	}
}
