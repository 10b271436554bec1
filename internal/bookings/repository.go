package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotConflict    = errors.New("requested time range overlaps an existing booking")
)

type Repository interface {
	CreateWithConflictCheck(ctx context.Context, booking *Booking, lines []BookingEquipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Booking, int64, error)
	GetForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithConflictCheck inserts the booking and its equipment lines in a
// single transaction. Overlapping bookings on the same court and date are
// locked FOR UPDATE before the insert so two concurrent submissions for
// the same slot serialize; the database exclusion constraint backstops the
// check, and either path surfaces ErrSlotConflict.
func (r *repository) CreateWithConflictCheck(ctx context.Context, booking *Booking, lines []BookingEquipment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicts []Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ? AND booking_date = ? AND status <> ?", booking.CourtID, booking.BookingDate, StatusCancelled).
			Where("start_hour < ? AND end_hour > ?", booking.EndHour, booking.StartHour).
			Find(&conflicts).Error
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrSlotConflict
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].BookingID = booking.ID
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		if isExclusionViolation(err) {
			return ErrSlotConflict
		}
		return err
	}
	return nil
}

// isExclusionViolation matches the bookings overlap exclusion constraint
// (SQLSTATE 23P01)
func isExclusionViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23P01") || strings.Contains(msg, "no_overlapping_bookings")
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Equipment").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Booking, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	err = r.db.WithContext(ctx).
		Preload("Equipment").
		Where("user_id = ?", userID).
		Order("booking_date DESC, start_hour DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	return bookings, total, err
}

// GetForCourtDate returns the non-cancelled bookings holding slots on a
// court for one date.
func (r *repository) GetForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND booking_date = ? AND status <> ?", courtID, date, StatusCancelled).
		Order("start_hour ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
