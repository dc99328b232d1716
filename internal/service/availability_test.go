package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func slotAt(slots []domain.Slot, hour, minute int) domain.Slot {
	idx := ((hour-7)*60 + minute) / 30
	return slots[idx]
}

func TestAvailabilityService_GetAvailability(t *testing.T) {
	courtRepo := mocks.NewMockCourtRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	now := local(9, 0)
	svc := NewAvailabilityService(courtRepo, bookingRepo, testPolicy())
	svc.now = fixedNow(now)

	expired := now.Add(-time.Minute)
	live := now.Add(5 * time.Minute)

	courts := []*domain.Court{
		{ID: "c1", Name: "Cancha 1", IsActive: true},
		{ID: "c2", Name: "Cancha 2", IsActive: true},
	}
	bookings := []*domain.Booking{
		{ID: "b1", CourtID: "c1", StartAt: local(18, 0), EndAt: local(19, 0), Status: domain.BookingStatusConfirmed},
		{ID: "b2", CourtID: "c1", StartAt: local(10, 0), EndAt: local(11, 0), Status: domain.BookingStatusHold, HoldExpiresAt: &live},
		{ID: "b3", CourtID: "c2", StartAt: local(12, 0), EndAt: local(13, 0), Status: domain.BookingStatusHold, HoldExpiresAt: &expired},
	}

	courtRepo.EXPECT().ListActive(mock.Anything).Return(courts, nil)
	bookingRepo.EXPECT().ListBlocking(mock.Anything,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(local(7, 0)) }),
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(local(22, 0)) }),
	).Return(bookings, nil)

	got, err := svc.GetAvailability(context.Background(), "2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, time.Hour, got.MinDuration)
	assert.Equal(t, 30*time.Minute, got.Step)
	require.Len(t, got.Courts, 2)

	c1 := got.Courts[0].Slots
	require.Len(t, c1, 30)
	assert.Equal(t, domain.SlotTaken, slotAt(c1, 18, 0).Status)
	assert.Equal(t, domain.SlotTaken, slotAt(c1, 18, 30).Status)
	assert.Equal(t, domain.SlotHold, slotAt(c1, 10, 0).Status)
	assert.False(t, slotAt(c1, 17, 30).CanStart)
	assert.True(t, slotAt(c1, 17, 0).CanStart)
	assert.False(t, slotAt(c1, 21, 30).CanStart)
	assert.True(t, slotAt(c1, 21, 0).CanStart)

	c2 := got.Courts[1].Slots
	assert.Equal(t, domain.SlotAvailable, slotAt(c2, 12, 0).Status)
	assert.True(t, slotAt(c2, 12, 0).CanStart)
}

func TestAvailabilityService_GetAvailability_InvalidDate(t *testing.T) {
	svc := NewAvailabilityService(mocks.NewMockCourtRepo(t), mocks.NewMockBookingRepo(t), testPolicy())

	_, err := svc.GetAvailability(context.Background(), "2026-13-40")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_GetAvailability_RepoError(t *testing.T) {
	courtRepo := mocks.NewMockCourtRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(courtRepo, bookingRepo, testPolicy())

	courtRepo.EXPECT().ListActive(mock.Anything).Return([]*domain.Court{{ID: "c1"}}, nil)
	bookingRepo.EXPECT().ListBlocking(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.GetAvailability(context.Background(), "2026-03-10")

	assert.Error(t, err)
}
