package pricing

import (
	"context"
	"errors"
	"time"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
	"courtly/pkg/cache"
	"courtly/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidRuleType  = errors.New("invalid pricing rule type")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownEquipment = errors.New("unknown equipment in quote")
)

const (
	activeRulesCacheKey = "courtly:pricing:rules:active"
	rulesCacheTTL       = 5 * time.Minute
)

type Service interface {
	CreateRule(ctx context.Context, req CreatePricingRuleRequest) (*PricingRule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*PricingRule, error)
	GetActiveRules(ctx context.Context) ([]PricingRule, error)
	GetAllRules(ctx context.Context) ([]PricingRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, req UpdatePricingRuleRequest) (*PricingRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
	Quote(ctx context.Context, req QuoteRequest) (*Breakdown, error)
	ResolveEquipmentLines(ctx context.Context, reqs []QuoteEquipmentLine) ([]EquipmentLine, error)
}

type service struct {
	repo          Repository
	courtRepo     courts.Repository
	equipmentRepo equipment.Repository
	coachRepo     coaches.Repository
	cache         cache.Service
	log           *logger.Logger
}

func NewService(
	repo Repository,
	courtRepo courts.Repository,
	equipmentRepo equipment.Repository,
	coachRepo coaches.Repository,
	cacheService cache.Service,
) Service {
	return &service{
		repo:          repo,
		courtRepo:     courtRepo,
		equipmentRepo: equipmentRepo,
		coachRepo:     coachRepo,
		cache:         cacheService,
		log:           logger.GetDefault(),
	}
}

func (s *service) CreateRule(ctx context.Context, req CreatePricingRuleRequest) (*PricingRule, error) {
	ruleType := RuleType(req.RuleType)
	if !ruleType.IsValid() {
		return nil, ErrInvalidRuleType
	}

	rule := &PricingRule{
		Name:               req.Name,
		RuleType:           ruleType,
		Multiplier:         req.Multiplier,
		FlatFee:            req.FlatFee,
		StartHour:          req.StartHour,
		EndHour:            req.EndHour,
		AppliesToCourtType: req.AppliesToCourtType,
		IsActive:           true,
		Priority:           req.Priority,
	}
	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return rule, nil
}

func (s *service) GetRule(ctx context.Context, id uuid.UUID) (*PricingRule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetActiveRules(ctx context.Context) ([]PricingRule, error) {
	var rules []PricingRule
	err := s.cache.GetOrSet(ctx, activeRulesCacheKey, rulesCacheTTL, func() (interface{}, error) {
		return s.repo.GetActive(ctx)
	}, &rules)
	if err != nil {
		return s.repo.GetActive(ctx)
	}
	return rules, nil
}

func (s *service) GetAllRules(ctx context.Context) ([]PricingRule, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) UpdateRule(ctx context.Context, id uuid.UUID, req UpdatePricingRuleRequest) (*PricingRule, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Multiplier != nil {
		updates["multiplier"] = *req.Multiplier
	}
	if req.FlatFee != nil {
		updates["flat_fee"] = *req.FlatFee
	}
	if req.StartHour != nil {
		updates["start_hour"] = *req.StartHour
	}
	if req.EndHour != nil {
		updates["end_hour"] = *req.EndHour
	}
	if req.AppliesToCourtType != nil {
		updates["applies_to_court_type"] = *req.AppliesToCourtType
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Quote computes an itemized price for a prospective booking without
// persisting anything. Bookings snapshot the same calculation at creation.
func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Breakdown, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	court, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	lines, err := s.ResolveEquipmentLines(ctx, req.Equipment)
	if err != nil {
		return nil, err
	}

	var coach *coaches.Coach
	if req.CoachID != nil {
		coach, err = s.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil {
			return nil, err
		}
	}

	rules, err := s.GetActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	return Calculate(*court, date, req.StartTime, req.EndTime, rules, lines, coach)
}

// ResolveEquipmentLines loads the referenced equipment and clamps each
// requested quantity into the item's available range.
func (s *service) ResolveEquipmentLines(ctx context.Context, reqs []QuoteEquipmentLine) ([]EquipmentLine, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(reqs))
	for _, line := range reqs {
		ids = append(ids, line.EquipmentID)
	}
	items, err := s.equipmentRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]equipment.Equipment, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lines := make([]EquipmentLine, 0, len(reqs))
	for _, req := range reqs {
		item, ok := byID[req.EquipmentID]
		if !ok {
			return nil, ErrUnknownEquipment
		}
		quantity := item.ClampQuantity(req.Quantity)
		if quantity == 0 {
			continue
		}
		lines = append(lines, EquipmentLine{Equipment: item, Quantity: quantity})
	}
	return lines, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, activeRulesCacheKey); err != nil {
		s.log.Warn("failed to invalidate pricing rules cache", "error", err)
	}
}
