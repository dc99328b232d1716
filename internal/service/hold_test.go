package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/pricing"
	"github.com/Roy125512/SacrePadel/internal/schedule"
	"github.com/Roy125512/SacrePadel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testZone = time.FixedZone("-06:00", -6*60*60)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testPolicy() Policy {
	return Policy{
		Facility: schedule.Facility{
			Zone:        testZone,
			OpenHour:    7,
			CloseHour:   22,
			Step:        30 * time.Minute,
			MinDuration: time.Hour,
		},
		Tariff: pricing.Tariff{
			DayRate:     350,
			EveningRate: 400,
			SwitchHour:  18,
			Zone:        testZone,
		},
		HoldTTL:          10 * time.Minute,
		PhoneRegion:      "MX",
		ToleranceMinutes: 15,
		ClubName:         "Sacre Padel",
		ContactPhone:     "222 123 4567",
	}
}

func local(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, testZone)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func eventOfType(typ domain.BookingEventType) any {
	return mock.MatchedBy(func(e domain.BookingEvent) bool { return e.Type == typ })
}

func webHold(id string, start, end, expiresAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CourtID:       "c1",
		StartAt:       start,
		EndAt:         end,
		Status:        domain.BookingStatusHold,
		Source:        domain.SourceWeb,
		Kind:          domain.KindStandard,
		HoldExpiresAt: &expiresAt,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

type holdDeps struct {
	bookingRepo *mocks.MockBookingRepo
	courtRepo   *mocks.MockCourtRepo
	sink        *mocks.MockBookingEventSink
}

func newHoldService(t *testing.T, now time.Time) (*HoldService, holdDeps) {
	d := holdDeps{
		bookingRepo: mocks.NewMockBookingRepo(t),
		courtRepo:   mocks.NewMockCourtRepo(t),
		sink:        mocks.NewMockBookingEventSink(t),
	}
	svc := NewHoldService(d.bookingRepo, d.courtRepo, d.sink, testPolicy(), newTestLogger(t))
	svc.now = fixedNow(now)
	return svc, d
}

func TestHoldService_CreateHold_Success(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	d.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", Name: "Cancha 1", IsActive: true}, nil)
	d.bookingRepo.EXPECT().SweepExpiredHolds(mock.Anything, now).Return(int64(2), nil)
	d.bookingRepo.EXPECT().CreateHold(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusHold &&
			b.PaymentStatus == domain.PaymentUnpaid &&
			b.HoldExpiresAt != nil && b.HoldExpiresAt.Equal(now.Add(10*time.Minute))
	})).Return(nil)
	d.sink.EXPECT().Record(mock.Anything, eventOfType(domain.EventHoldCreated)).Return(nil)

	hold, err := svc.CreateHold(context.Background(), domain.CreateHoldInput{
		CourtID: "c1",
		StartAt: local(18, 0),
		EndAt:   local(19, 30),
		Source:  domain.SourceWeb,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, hold.ID)
	assert.Equal(t, "c1", hold.CourtID)
	assert.Equal(t, domain.SourceWeb, hold.Source)
	assert.Equal(t, domain.KindStandard, hold.Kind)

	time.Sleep(50 * time.Millisecond) // goroutine record
}

func TestHoldService_CreateHold_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   domain.CreateHoldInput
	}{
		{"end before start", domain.CreateHoldInput{CourtID: "c1", StartAt: local(19, 0), EndAt: local(18, 0), Source: domain.SourceWeb}},
		{"empty range", domain.CreateHoldInput{CourtID: "c1", StartAt: local(19, 0), EndAt: local(19, 0), Source: domain.SourceWeb}},
		{"past closing", domain.CreateHoldInput{CourtID: "c1", StartAt: local(21, 30), EndAt: local(22, 30), Source: domain.SourceWeb}},
		{"before opening", domain.CreateHoldInput{CourtID: "c1", StartAt: local(6, 30), EndAt: local(7, 30), Source: domain.SourceWeb}},
		{"start in the past", domain.CreateHoldInput{CourtID: "c1", StartAt: local(8, 0), EndAt: local(9, 30), Source: domain.SourceWeb}},
		{"unknown source", domain.CreateHoldInput{CourtID: "c1", StartAt: local(18, 0), EndAt: local(19, 0), Source: "FAX"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newHoldService(t, local(9, 0))

			_, err := svc.CreateHold(context.Background(), tc.in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestHoldService_CreateHold_InactiveCourt(t *testing.T) {
	svc, d := newHoldService(t, local(9, 0))

	d.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", IsActive: false}, nil)

	_, err := svc.CreateHold(context.Background(), domain.CreateHoldInput{
		CourtID: "c1", StartAt: local(18, 0), EndAt: local(19, 0), Source: domain.SourceWeb,
	})

	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestHoldService_CreateHold_SweepFailureDoesNotBlock(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	d.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", IsActive: true}, nil)
	d.bookingRepo.EXPECT().SweepExpiredHolds(mock.Anything, now).Return(int64(0), errors.New("db error"))
	d.bookingRepo.EXPECT().CreateHold(mock.Anything, mock.Anything).Return(nil)
	d.sink.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("sink down"))

	hold, err := svc.CreateHold(context.Background(), domain.CreateHoldInput{
		CourtID: "c1", StartAt: local(18, 0), EndAt: local(19, 0), Source: domain.SourceReception,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SourceReception, hold.Source)

	time.Sleep(50 * time.Millisecond) // goroutine record
}

func TestHoldService_CreateHold_NonWebHoldHasNoExpiry(t *testing.T) {
	for _, source := range []domain.BookingSource{domain.SourceReception, domain.SourceWhatsApp} {
		t.Run(string(source), func(t *testing.T) {
			now := local(9, 0)
			svc, d := newHoldService(t, now)

			d.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", IsActive: true}, nil)
			d.bookingRepo.EXPECT().SweepExpiredHolds(mock.Anything, now).Return(int64(0), nil)
			d.bookingRepo.EXPECT().CreateHold(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
				return b.Source == source && b.HoldExpiresAt == nil
			})).Return(nil)
			d.sink.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

			hold, err := svc.CreateHold(context.Background(), domain.CreateHoldInput{
				CourtID: "c1", StartAt: local(18, 0), EndAt: local(19, 0), Source: source,
			})

			require.NoError(t, err)
			assert.Nil(t, hold.HoldExpiresAt)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestHoldService_CreateHold_SlotTaken(t *testing.T) {
	svc, d := newHoldService(t, local(9, 0))

	d.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", IsActive: true}, nil)
	d.bookingRepo.EXPECT().SweepExpiredHolds(mock.Anything, mock.Anything).Return(int64(0), nil)
	d.bookingRepo.EXPECT().CreateHold(mock.Anything, mock.Anything).Return(domain.ErrSlotUnavailable)

	_, err := svc.CreateHold(context.Background(), domain.CreateHoldInput{
		CourtID: "c1", StartAt: local(18, 0), EndAt: local(19, 0), Source: domain.SourceWeb,
	})

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.True(t, domain.IsConflict(err))
}

func TestHoldService_ExtendHold_Success(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	hold := webHold("h1", local(18, 0), local(19, 0), now.Add(5*time.Minute))
	extended := webHold("h1", local(18, 0), local(19, 30), now.Add(10*time.Minute))

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "h1").Return(hold, nil)
	d.bookingRepo.EXPECT().ExtendHold(mock.Anything, "h1", local(19, 30), now, now.Add(10*time.Minute)).Return(extended, nil)
	d.sink.EXPECT().Record(mock.Anything, eventOfType(domain.EventHoldExtended)).Return(nil)

	got, err := svc.ExtendHold(context.Background(), "h1", local(19, 30))

	require.NoError(t, err)
	assert.True(t, got.EndAt.Equal(local(19, 30)))

	time.Sleep(50 * time.Millisecond) // goroutine record
}

func TestHoldService_ExtendHold_ExpiredIsDeleted(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "h1").Return(webHold("h1", local(18, 0), local(19, 0), now.Add(-time.Second)), nil)
	d.bookingRepo.EXPECT().DeleteExpiredHold(mock.Anything, "h1", now).Return(nil)

	_, err := svc.ExtendHold(context.Background(), "h1", local(19, 30))

	assert.ErrorIs(t, err, domain.ErrHoldExpired)
}

func TestHoldService_ExtendHold_NotWebHold(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	hold := webHold("h1", local(18, 0), local(19, 0), now.Add(time.Minute))
	hold.Source = domain.SourceReception
	d.bookingRepo.EXPECT().GetByID(mock.Anything, "h1").Return(hold, nil)

	_, err := svc.ExtendHold(context.Background(), "h1", local(19, 30))

	assert.ErrorIs(t, err, domain.ErrNotWebHold)
}

func TestHoldService_ExtendHold_PastClosing(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "h1").Return(webHold("h1", local(21, 0), local(22, 0), now.Add(time.Minute)), nil)

	_, err := svc.ExtendHold(context.Background(), "h1", local(22, 30))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHoldService_ExtendHold_Conflict(t *testing.T) {
	now := local(9, 0)
	svc, d := newHoldService(t, now)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "h1").Return(webHold("h1", local(18, 0), local(19, 0), now.Add(time.Minute)), nil)
	d.bookingRepo.EXPECT().ExtendHold(mock.Anything, "h1", mock.Anything, now, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	_, err := svc.ExtendHold(context.Background(), "h1", local(20, 0))

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestHoldService_ExtendHold_NotFound(t *testing.T) {
	svc, d := newHoldService(t, local(9, 0))

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.ExtendHold(context.Background(), "missing", local(20, 0))

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestHoldService_ReleaseHold(t *testing.T) {
	svc, d := newHoldService(t, local(9, 0))

	d.bookingRepo.EXPECT().ReleaseHold(mock.Anything, "h1").Return(true, nil)
	d.sink.EXPECT().Record(mock.Anything, eventOfType(domain.EventHoldReleased)).Return(nil)

	released, err := svc.ReleaseHold(context.Background(), "h1")

	require.NoError(t, err)
	assert.True(t, released)

	time.Sleep(50 * time.Millisecond) // goroutine record
}

func TestHoldService_ReleaseHold_AlreadyGone(t *testing.T) {
	svc, d := newHoldService(t, local(9, 0))

	d.bookingRepo.EXPECT().ReleaseHold(mock.Anything, "h1").Return(false, nil)

	released, err := svc.ReleaseHold(context.Background(), "h1")

	require.NoError(t, err)
	assert.False(t, released)
}
