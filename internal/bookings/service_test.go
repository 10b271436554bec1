package bookings_test

import (
	"context"
	"testing"
	"time"

	"courtly/internal/bookings"
	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testPolicy = config.BookingPolicyConfig{
	OpenHour:      6,
	CloseHour:     22,
	PeakStartHour: 18,
	PeakEndHour:   21,
}

type fakeBookingRepo struct {
	bookings     []*bookings.Booking
	conflictErr  error
	createdLines []bookings.BookingEquipment
}

func (f *fakeBookingRepo) CreateWithConflictCheck(ctx context.Context, booking *bookings.Booking, lines []bookings.BookingEquipment) error {
	if f.conflictErr != nil {
		return f.conflictErr
	}
	booking.ID = uuid.New()
	f.bookings = append(f.bookings, booking)
	f.createdLines = lines
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookings.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]bookings.Booking, int64, error) {
	var out []bookings.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) GetForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]bookings.Booking, error) {
	var out []bookings.Booking
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.BookingDate.Equal(date) && b.Status != bookings.StatusCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status bookings.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return bookings.ErrBookingNotFound
}

type fakeCourtRepo struct {
	court *courts.Court
}

func (f *fakeCourtRepo) Create(ctx context.Context, court *courts.Court) error { return nil }
func (f *fakeCourtRepo) GetByID(ctx context.Context, id uuid.UUID) (*courts.Court, error) {
	if f.court != nil && f.court.ID == id {
		return f.court, nil
	}
	return nil, courts.ErrCourtNotFound
}
func (f *fakeCourtRepo) GetActive(ctx context.Context) ([]courts.Court, error) { return nil, nil }
func (f *fakeCourtRepo) GetAll(ctx context.Context) ([]courts.Court, error)    { return nil, nil }
func (f *fakeCourtRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*courts.Court, error) {
	return nil, nil
}
func (f *fakeCourtRepo) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

type fakeCoachRepo struct {
	coach *coaches.Coach
}

func (f *fakeCoachRepo) Create(ctx context.Context, coach *coaches.Coach) error { return nil }
func (f *fakeCoachRepo) GetByID(ctx context.Context, id uuid.UUID) (*coaches.Coach, error) {
	if f.coach != nil && f.coach.ID == id {
		return f.coach, nil
	}
	return nil, coaches.ErrCoachNotFound
}
func (f *fakeCoachRepo) GetActive(ctx context.Context) ([]coaches.Coach, error) { return nil, nil }
func (f *fakeCoachRepo) GetAll(ctx context.Context) ([]coaches.Coach, error)    { return nil, nil }
func (f *fakeCoachRepo) Update(ctx context.Context, coach *coaches.Coach) error { return nil }
func (f *fakeCoachRepo) Deactivate(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeCoachRepo) ReplaceAvailability(ctx context.Context, coachID uuid.UUID, windows []coaches.CoachAvailability) error {
	return nil
}

type fakePricingService struct {
	rules []pricing.PricingRule
	lines []pricing.EquipmentLine
}

func (f *fakePricingService) CreateRule(ctx context.Context, req pricing.CreatePricingRuleRequest) (*pricing.PricingRule, error) {
	return nil, nil
}
func (f *fakePricingService) GetRule(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	return nil, nil
}
func (f *fakePricingService) GetActiveRules(ctx context.Context) ([]pricing.PricingRule, error) {
	return f.rules, nil
}
func (f *fakePricingService) GetAllRules(ctx context.Context) ([]pricing.PricingRule, error) {
	return f.rules, nil
}
func (f *fakePricingService) UpdateRule(ctx context.Context, id uuid.UUID, req pricing.UpdatePricingRuleRequest) (*pricing.PricingRule, error) {
	return nil, nil
}
func (f *fakePricingService) DeleteRule(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakePricingService) Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.Breakdown, error) {
	return nil, nil
}
func (f *fakePricingService) ResolveEquipmentLines(ctx context.Context, reqs []pricing.QuoteEquipmentLine) ([]pricing.EquipmentLine, error) {
	return f.lines, nil
}

type fakePublisher struct {
	confirmed []*bookings.Booking
	cancelled []*bookings.Booking
}

func (f *fakePublisher) PublishBookingConfirmed(ctx context.Context, b *bookings.Booking) error {
	f.confirmed = append(f.confirmed, b)
	return nil
}

func (f *fakePublisher) PublishBookingCancelled(ctx context.Context, b *bookings.Booking) error {
	f.cancelled = append(f.cancelled, b)
	return nil
}

func newTestService(repo *fakeBookingRepo, court *courts.Court, coach *coaches.Coach, publisher *fakePublisher) bookings.Service {
	// A nil *fakePublisher must become a nil interface, not a typed nil,
	// so the service's publisher guard actually skips publishing.
	var pub bookings.EventPublisher
	if publisher != nil {
		pub = publisher
	}
	return bookings.NewService(
		repo,
		&fakeCourtRepo{court: court},
		&fakeCoachRepo{coach: coach},
		&fakePricingService{},
		testPolicy,
		pub,
	)
}

func testCourt() *courts.Court {
	return &courts.Court{
		ID:             uuid.New(),
		Name:           "Court 1",
		CourtType:      courts.CourtTypeIndoor,
		BaseHourlyRate: 60,
		IsActive:       true,
	}
}

func TestCreateBookingSnapshotsBreakdown(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	publisher := &fakePublisher{}
	svc := newTestService(repo, court, nil, publisher)
	userID := uuid.New()

	booking, err := svc.CreateBooking(context.Background(), userID, bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	require.Equal(t, userID, booking.UserID)
	require.Equal(t, 10, booking.StartHour)
	require.Equal(t, 12, booking.EndHour)
	require.Equal(t, bookings.StatusConfirmed, booking.Status)
	require.Equal(t, 120.0, booking.BasePrice)
	require.Equal(t, 120.0, booking.TotalPrice)
	require.Equal(t, 120.0, booking.PriceBreakdown.Total)
	require.Len(t, publisher.confirmed, 1)
}

func TestCreateBookingWithoutPublisher(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	svc := newTestService(repo, court, nil, nil)

	booking, err := svc.CreateBooking(context.Background(), uuid.New(), bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)
	require.Equal(t, bookings.StatusConfirmed, booking.Status)
}

func TestCreateBookingRejectsBadWindows(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	svc := newTestService(repo, court, nil, nil)
	userID := uuid.New()

	cases := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{"past date", "2020-01-01", "10:00", "11:00", bookings.ErrPastDate},
		{"bad date", "June 12", "10:00", "11:00", bookings.ErrInvalidDate},
		{"zero duration", "2030-06-12", "10:00", "10:00", bookings.ErrInvalidTimeRange},
		{"inverted range", "2030-06-12", "12:00", "10:00", bookings.ErrInvalidTimeRange},
		{"before opening", "2030-06-12", "05:00", "07:00", bookings.ErrInvalidTimeRange},
		{"past closing", "2030-06-12", "21:00", "23:00", bookings.ErrInvalidTimeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), userID, bookings.CreateBookingRequest{
				CourtID:   court.ID,
				Date:      tc.date,
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateBookingSlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{conflictErr: bookings.ErrSlotConflict}
	court := testCourt()
	publisher := &fakePublisher{}
	svc := newTestService(repo, court, nil, publisher)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.ErrorIs(t, err, bookings.ErrSlotConflict)
	require.Empty(t, publisher.confirmed)
}

func TestCreateBookingInactiveCourt(t *testing.T) {
	court := testCourt()
	court.IsActive = false
	svc := newTestService(&fakeBookingRepo{}, court, nil, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.ErrorIs(t, err, bookings.ErrCourtInactive)
}

func TestCreateBookingCoachEligibility(t *testing.T) {
	court := testCourt()
	coach := &coaches.Coach{
		ID:         uuid.New(),
		Name:       "Coach Sarah",
		HourlyRate: 35,
		IsActive:   true,
		Availability: []coaches.CoachAvailability{
			{DayOfWeek: coaches.Wednesday, StartTime: "09:00", EndTime: "17:00"},
		},
	}
	svc := newTestService(&fakeBookingRepo{}, court, coach, nil)
	userID := uuid.New()

	// 2030-06-12 is a Wednesday
	booking, err := svc.CreateBooking(context.Background(), userID, bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
		CoachID:   &coach.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 70.0, booking.PriceBreakdown.CoachFee)
	require.Equal(t, 190.0, booking.TotalPrice)

	_, err = svc.CreateBooking(context.Background(), userID, bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "16:00",
		EndTime:   "18:00",
		CoachID:   &coach.ID,
	})
	require.ErrorIs(t, err, bookings.ErrCoachUnavailable)
}

func TestCancelBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	publisher := &fakePublisher{}
	svc := newTestService(repo, court, nil, publisher)
	owner := uuid.New()

	booking, err := svc.CreateBooking(context.Background(), owner, bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), uuid.New(), false, booking.ID)
	require.ErrorIs(t, err, bookings.ErrNotBookingOwner)

	cancelled, err := svc.CancelBooking(context.Background(), owner, false, booking.ID)
	require.NoError(t, err)
	require.Equal(t, bookings.StatusCancelled, cancelled.Status)
	require.Len(t, publisher.cancelled, 1)

	_, err = svc.CancelBooking(context.Background(), owner, false, booking.ID)
	require.ErrorIs(t, err, bookings.ErrNotCancellable)
}

func TestCancelBookingAdminOverride(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	svc := newTestService(repo, court, nil, nil)

	booking, err := svc.CreateBooking(context.Background(), uuid.New(), bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(context.Background(), uuid.New(), true, booking.ID)
	require.NoError(t, err)
	require.Equal(t, bookings.StatusCancelled, cancelled.Status)
}

func TestGetAvailabilityMarksBookedAndPeak(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	svc := newTestService(repo, court, nil, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	availability, err := svc.GetAvailability(context.Background(), court.ID, "2030-06-12")
	require.NoError(t, err)
	require.Len(t, availability.Slots, testPolicy.CloseHour-testPolicy.OpenHour)

	byTime := make(map[string]bookings.SlotStatus)
	for _, slot := range availability.Slots {
		byTime[slot.Time] = slot
	}

	require.True(t, byTime["10:00"].IsBooked)
	require.True(t, byTime["11:00"].IsBooked)
	require.False(t, byTime["12:00"].IsBooked)
	require.False(t, byTime["17:00"].IsPeak)
	require.True(t, byTime["18:00"].IsPeak)
	require.True(t, byTime["20:00"].IsPeak)
	require.False(t, byTime["21:00"].IsPeak)
}

func TestCancelledBookingFreesSlots(t *testing.T) {
	repo := &fakeBookingRepo{}
	court := testCourt()
	svc := newTestService(repo, court, nil, nil)
	owner := uuid.New()

	booking, err := svc.CreateBooking(context.Background(), owner, bookings.CreateBookingRequest{
		CourtID:   court.ID,
		Date:      "2030-06-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), owner, false, booking.ID)
	require.NoError(t, err)

	availability, err := svc.GetAvailability(context.Background(), court.ID, "2030-06-12")
	require.NoError(t, err)
	for _, slot := range availability.Slots {
		require.False(t, slot.IsBooked)
	}
}
