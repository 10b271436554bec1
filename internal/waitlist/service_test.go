package waitlist_test

import (
	"context"
	"testing"
	"time"

	"courtly/internal/courts"
	"courtly/internal/waitlist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	entries map[uuid.UUID]*waitlist.WaitlistEntry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: make(map[uuid.UUID]*waitlist.WaitlistEntry)}
}

func (f *fakeRepo) Create(ctx context.Context, entry *waitlist.WaitlistEntry) error {
	for _, existing := range f.entries {
		if existing.UserID == entry.UserID && existing.CourtID == entry.CourtID &&
			existing.BookingDate.Equal(entry.BookingDate) && existing.StartHour == entry.StartHour {
			return waitlist.ErrAlreadyQueued
		}
	}
	entry.ID = uuid.New()
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*waitlist.WaitlistEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, waitlist.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]waitlist.WaitlistEntry, error) {
	var out []waitlist.WaitlistEntry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]waitlist.WaitlistEntry, error) {
	var out []waitlist.WaitlistEntry
	for _, entry := range f.entries {
		if entry.CourtID == courtID && entry.BookingDate.Equal(date) {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.entries[id]; !ok {
		return waitlist.ErrEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeCourtRepo struct {
	courtID uuid.UUID
}

func (f *fakeCourtRepo) Create(ctx context.Context, court *courts.Court) error { return nil }
func (f *fakeCourtRepo) GetByID(ctx context.Context, id uuid.UUID) (*courts.Court, error) {
	if id == f.courtID {
		return &courts.Court{ID: id, Name: "Court 1", IsActive: true}, nil
	}
	return nil, courts.ErrCourtNotFound
}
func (f *fakeCourtRepo) GetActive(ctx context.Context) ([]courts.Court, error) { return nil, nil }
func (f *fakeCourtRepo) GetAll(ctx context.Context) ([]courts.Court, error)    { return nil, nil }
func (f *fakeCourtRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*courts.Court, error) {
	return nil, nil
}
func (f *fakeCourtRepo) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

func TestJoinAndLeave(t *testing.T) {
	courtID := uuid.New()
	svc := waitlist.NewService(newFakeRepo(), &fakeCourtRepo{courtID: courtID})
	userID := uuid.New()

	entry, err := svc.Join(context.Background(), userID, waitlist.JoinWaitlistRequest{
		CourtID:   courtID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)
	require.Equal(t, 10, entry.StartHour)
	require.Equal(t, 12, entry.EndHour)

	// Same slot again is rejected
	_, err = svc.Join(context.Background(), userID, waitlist.JoinWaitlistRequest{
		CourtID:   courtID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.ErrorIs(t, err, waitlist.ErrAlreadyQueued)

	// Another user cannot remove the entry
	err = svc.Leave(context.Background(), uuid.New(), entry.ID)
	require.ErrorIs(t, err, waitlist.ErrNotEntryOwner)

	require.NoError(t, svc.Leave(context.Background(), userID, entry.ID))
	err = svc.Leave(context.Background(), userID, entry.ID)
	require.ErrorIs(t, err, waitlist.ErrEntryNotFound)
}

func TestJoinValidation(t *testing.T) {
	courtID := uuid.New()
	svc := waitlist.NewService(newFakeRepo(), &fakeCourtRepo{courtID: courtID})
	userID := uuid.New()

	_, err := svc.Join(context.Background(), userID, waitlist.JoinWaitlistRequest{
		CourtID: courtID, Date: "soon", StartTime: "10:00", EndTime: "12:00",
	})
	require.ErrorIs(t, err, waitlist.ErrInvalidDate)

	_, err = svc.Join(context.Background(), userID, waitlist.JoinWaitlistRequest{
		CourtID: courtID, Date: "2030-06-12", StartTime: "12:00", EndTime: "10:00",
	})
	require.ErrorIs(t, err, waitlist.ErrInvalidTimeRange)

	_, err = svc.Join(context.Background(), userID, waitlist.JoinWaitlistRequest{
		CourtID: uuid.New(), Date: "2030-06-12", StartTime: "10:00", EndTime: "12:00",
	})
	require.ErrorIs(t, err, courts.ErrCourtNotFound)
}
