package waitlist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = errors.New("waitlist entry not found")
	ErrAlreadyQueued = errors.New("already on the waitlist for this slot")
)

type Repository interface {
	Create(ctx context.Context, entry *WaitlistEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*WaitlistEntry, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error)
	GetForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]WaitlistEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *WaitlistEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil && isUniqueViolation(err) {
		return ErrAlreadyQueued
	}
	return err
}

// isUniqueViolation matches the per-user slot uniqueness index
// (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "idx_waitlist_user_slot")
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*WaitlistEntry, error) {
	var entry WaitlistEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error) {
	var entries []WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date ASC, start_hour ASC").
		Find(&entries).Error
	return entries, err
}

// GetForCourtDate returns entries for one court and date in join order
func (r *repository) GetForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]WaitlistEntry, error) {
	var entries []WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND booking_date = ?", courtID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&WaitlistEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
