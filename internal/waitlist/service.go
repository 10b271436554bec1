package waitlist

import (
	"context"
	"errors"
	"time"

	"courtly/internal/courts"
	"courtly/internal/slots"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeRange = errors.New("invalid waitlist time range")
	ErrNotEntryOwner    = errors.New("waitlist entry belongs to another user")
)

type Service interface {
	Join(ctx context.Context, userID uuid.UUID, req JoinWaitlistRequest) (*WaitlistEntry, error)
	Leave(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error
	GetUserEntries(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error)
	GetForCourtDate(ctx context.Context, courtID uuid.UUID, dateStr string) ([]WaitlistEntry, error)
}

type service struct {
	repo      Repository
	courtRepo courts.Repository
}

func NewService(repo Repository, courtRepo courts.Repository) Service {
	return &service{repo: repo, courtRepo: courtRepo}
}

func (s *service) Join(ctx context.Context, userID uuid.UUID, req JoinWaitlistRequest) (*WaitlistEntry, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	startHour := slots.HourOf(req.StartTime)
	endHour := slots.HourOf(req.EndTime)
	if startHour < 0 || endHour <= startHour {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		return nil, err
	}

	entry := &WaitlistEntry{
		UserID:      userID,
		CourtID:     req.CourtID,
		BookingDate: date,
		StartHour:   startHour,
		EndHour:     endHour,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) Leave(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return ErrNotEntryOwner
	}
	return s.repo.Delete(ctx, entryID)
}

func (s *service) GetUserEntries(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) GetForCourtDate(ctx context.Context, courtID uuid.UUID, dateStr string) ([]WaitlistEntry, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return s.repo.GetForCourtDate(ctx, courtID, date)
}
