package coaches

import (
	"context"
	"errors"
	"time"

	"courtly/pkg/cache"
	"courtly/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayOfWeek = errors.New("invalid day of week")
	ErrInvalidTimeRange = errors.New("availability window end must be after start")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
)

const (
	activeCoachesCacheKey = "courtly:coaches:active"
	coachesCacheTTL       = 5 * time.Minute
)

type Service interface {
	CreateCoach(ctx context.Context, req CreateCoachRequest) (*Coach, error)
	GetCoach(ctx context.Context, id uuid.UUID) (*Coach, error)
	GetActiveCoaches(ctx context.Context) ([]Coach, error)
	GetAllCoaches(ctx context.Context) ([]Coach, error)
	GetEligibleCoaches(ctx context.Context, query EligibleCoachesQuery) ([]Coach, error)
	UpdateCoach(ctx context.Context, id uuid.UUID, req UpdateCoachRequest) (*Coach, error)
	DeactivateCoach(ctx context.Context, id uuid.UUID) error
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

func buildWindows(coachID uuid.UUID, reqs []AvailabilityWindowRequest) ([]CoachAvailability, error) {
	windows := make([]CoachAvailability, 0, len(reqs))
	for _, w := range reqs {
		day := DayOfWeek(w.DayOfWeek)
		if !day.IsValid() {
			return nil, ErrInvalidDayOfWeek
		}
		if hourOf(w.EndTime) <= hourOf(w.StartTime) {
			return nil, ErrInvalidTimeRange
		}
		windows = append(windows, CoachAvailability{
			CoachID:   coachID,
			DayOfWeek: day,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}
	return windows, nil
}

func (s *service) CreateCoach(ctx context.Context, req CreateCoachRequest) (*Coach, error) {
	coach := &Coach{
		Name:       req.Name,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, coach); err != nil {
		return nil, err
	}

	windows, err := buildWindows(coach.ID, req.Availability)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAvailability(ctx, coach.ID, windows); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return s.repo.GetByID(ctx, coach.ID)
}

func (s *service) GetCoach(ctx context.Context, id uuid.UUID) (*Coach, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetActiveCoaches(ctx context.Context) ([]Coach, error) {
	var coaches []Coach
	err := s.cache.GetOrSet(ctx, activeCoachesCacheKey, coachesCacheTTL, func() (interface{}, error) {
		return s.repo.GetActive(ctx)
	}, &coaches)
	if err != nil {
		return s.repo.GetActive(ctx)
	}
	return coaches, nil
}

func (s *service) GetAllCoaches(ctx context.Context) ([]Coach, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetEligibleCoaches(ctx context.Context, query EligibleCoachesQuery) ([]Coach, error) {
	date, err := time.Parse("2006-01-02", query.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	coaches, err := s.GetActiveCoaches(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEligible(coaches, date, query.StartTime, query.EndTime), nil
}

func (s *service) UpdateCoach(ctx context.Context, id uuid.UUID, req UpdateCoachRequest) (*Coach, error) {
	coach, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		coach.Name = *req.Name
	}
	if req.Specialty != nil {
		coach.Specialty = *req.Specialty
	}
	if req.HourlyRate != nil {
		coach.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		coach.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, coach); err != nil {
		return nil, err
	}

	if req.Availability != nil {
		windows, err := buildWindows(id, req.Availability)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceAvailability(ctx, id, windows); err != nil {
			return nil, err
		}
	}

	s.invalidateCache(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeactivateCoach(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, activeCoachesCacheKey); err != nil {
		s.log.Warn("failed to invalidate coaches cache", "error", err)
	}
}
