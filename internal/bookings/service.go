package bookings

import (
	"context"
	"errors"
	"time"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/shared/config"
	"courtly/internal/slots"
	"courtly/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrPastDate         = errors.New("booking date cannot be in the past")
	ErrInvalidTimeRange = errors.New("invalid booking time range")
	ErrCourtInactive    = errors.New("court is not available for booking")
	ErrCoachUnavailable = errors.New("coach is not available for the requested time")
	ErrNotBookingOwner  = errors.New("booking belongs to another user")
	ErrNotCancellable   = errors.New("only confirmed bookings can be cancelled")
)

// EventPublisher emits booking lifecycle events to interested consumers.
// Publishing is best effort; a publish failure never fails the booking.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *Booking) error
	PublishBookingCancelled(ctx context.Context, booking *Booking) error
}

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query ListBookingsQuery) (*PaginatedBookings, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) (*Booking, error)
	GetAvailability(ctx context.Context, courtID uuid.UUID, dateStr string) (*AvailabilityResponse, error)
}

type service struct {
	repo      Repository
	courtRepo courts.Repository
	coachRepo coaches.Repository
	pricing   pricing.Service
	policy    config.BookingPolicyConfig
	publisher EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

func NewService(
	repo Repository,
	courtRepo courts.Repository,
	coachRepo coaches.Repository,
	pricingService pricing.Service,
	policy config.BookingPolicyConfig,
	publisher EventPublisher,
) Service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		coachRepo: coachRepo,
		pricing:   pricingService,
		policy:    policy,
		publisher: publisher,
		log:       logger.GetDefault(),
		now:       time.Now,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	startHour := slots.HourOf(req.StartTime)
	endHour := slots.HourOf(req.EndTime)
	if startHour < 0 || endHour <= startHour {
		return nil, ErrInvalidTimeRange
	}
	if startHour < s.policy.OpenHour || endHour > s.policy.CloseHour {
		return nil, ErrInvalidTimeRange
	}

	court, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if !court.IsActive {
		return nil, ErrCourtInactive
	}

	lines, err := s.pricing.ResolveEquipmentLines(ctx, req.Equipment)
	if err != nil {
		return nil, err
	}

	var coach *coaches.Coach
	if req.CoachID != nil {
		coach, err = s.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil {
			return nil, err
		}
		if !coach.IsEligible(date, req.StartTime, req.EndTime) {
			return nil, ErrCoachUnavailable
		}
	}

	rules, err := s.pricing.GetActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	// The breakdown is computed exactly once here and stored with the
	// booking as a frozen snapshot.
	breakdown, err := pricing.Calculate(*court, date, req.StartTime, req.EndTime, rules, lines, coach)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		UserID:         userID,
		CourtID:        court.ID,
		CoachID:        req.CoachID,
		BookingDate:    date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		StartHour:      startHour,
		EndHour:        endHour,
		BasePrice:      breakdown.BaseCourtPrice,
		TotalPrice:     breakdown.Total,
		PriceBreakdown: *breakdown,
		Status:         StatusConfirmed,
	}

	equipmentLines := make([]BookingEquipment, 0, len(lines))
	for _, line := range lines {
		equipmentLines = append(equipmentLines, BookingEquipment{
			EquipmentID: line.Equipment.ID,
			Quantity:    line.Quantity,
			HourlyRate:  line.Equipment.HourlyRate,
		})
	}

	if err := s.repo.CreateWithConflictCheck(ctx, booking, equipmentLines); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			s.log.LogSlotConflict(ctx, court.ID.String(), req.Date, req.StartTime, req.EndTime)
		}
		return nil, err
	}
	booking.Equipment = equipmentLines

	s.log.LogBookingCreated(ctx, booking.ID.String(), court.ID.String(), userID.String())
	if s.publisher != nil {
		if err := s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
			s.log.Warn("failed to publish booking confirmed event", "booking_id", booking.ID, "error", err)
		}
	}
	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID && !isAdmin {
		return nil, ErrNotBookingOwner
	}
	return booking, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, query ListBookingsQuery) (*PaginatedBookings, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	bookings, total, err := s.repo.GetByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PaginatedBookings{
		Bookings:   bookings,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) CancelBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID && !isAdmin {
		return nil, ErrNotBookingOwner
	}
	if booking.Status != StatusConfirmed {
		return nil, ErrNotCancellable
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = StatusCancelled

	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.CourtID.String(), userID.String())
	if s.publisher != nil {
		if err := s.publisher.PublishBookingCancelled(ctx, booking); err != nil {
			s.log.Warn("failed to publish booking cancelled event", "booking_id", booking.ID, "error", err)
		}
	}
	return booking, nil
}

// GetAvailability builds the hourly slot grid for a court and date, marking
// each slot booked or peak.
func (s *service) GetAvailability(ctx context.Context, courtID uuid.UUID, dateStr string) (*AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.courtRepo.GetByID(ctx, courtID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetForCourtDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	windows := make([]slots.BookedWindow, 0, len(existing))
	for _, b := range existing {
		windows = append(windows, slots.BookedWindow{StartHour: b.StartHour, EndHour: b.EndHour})
	}

	grid := make([]SlotStatus, 0, s.policy.CloseHour-s.policy.OpenHour)
	for _, slot := range slots.Generate(s.policy.OpenHour, s.policy.CloseHour) {
		hour := slots.HourOf(slot)
		grid = append(grid, SlotStatus{
			Time:     slot,
			IsBooked: slots.IsBooked(slot, windows),
			IsPeak:   hour >= s.policy.PeakStartHour && hour < s.policy.PeakEndHour,
		})
	}

	return &AvailabilityResponse{
		CourtID: courtID,
		Date:    dateStr,
		Slots:   grid,
	}, nil
}
