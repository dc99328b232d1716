package events

import (
	"context"
	"errors"
	"testing"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "booking.hold_created", RoutingKey(domain.EventHoldCreated))
	assert.Equal(t, "booking.web_hold_released", RoutingKey(domain.EventHoldReleased))
	assert.Equal(t, "booking.paid", RoutingKey(domain.EventPaid))
}

func TestFanout_DeliversToAll(t *testing.T) {
	first := mocks.NewMockBookingEventSink(t)
	second := mocks.NewMockBookingEventSink(t)
	event := domain.BookingEvent{ID: "e1", BookingID: "b1", Type: domain.EventConfirmed}

	first.EXPECT().Record(context.Background(), event).Return(nil)
	second.EXPECT().Record(context.Background(), event).Return(nil)

	require.NoError(t, NewFanout(first, second).Record(context.Background(), event))
}

func TestFanout_KeepsGoingOnError(t *testing.T) {
	failing := mocks.NewMockBookingEventSink(t)
	healthy := mocks.NewMockBookingEventSink(t)
	event := domain.BookingEvent{ID: "e1", Type: domain.EventPaid}
	boom := errors.New("broker down")

	failing.EXPECT().Record(context.Background(), event).Return(boom)
	healthy.EXPECT().Record(context.Background(), event).Return(nil)

	err := NewFanout(failing, healthy).Record(context.Background(), event)

	assert.ErrorIs(t, err, boom)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, NewFanout().Record(context.Background(), domain.BookingEvent{}))
}
