package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/pricing"
	"github.com/Roy125512/SacrePadel/internal/schedule"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type Policy struct {
	Facility         schedule.Facility
	Tariff           pricing.Tariff
	HoldTTL          time.Duration
	PhoneRegion      string
	ToleranceMinutes int
	ClubName         string
	ContactPhone     string
}

func (p Policy) validateRange(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", domain.ErrValidation)
	}
	if !p.Facility.Contains(start, end) {
		return fmt.Errorf("%w: booking must fit within opening hours %02d:00-%02d:00",
			domain.ErrValidation, p.Facility.OpenHour, p.Facility.CloseHour)
	}
	return nil
}

// dayWindow: включительный диапазон локальных дат -> [from, to)
func (p Policy) dayWindow(startDate, endDate string) (time.Time, time.Time, error) {
	from, err := p.Facility.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, startDate)
	}
	to, err := p.Facility.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, endDate)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date is before start date", domain.ErrValidation)
	}
	return from, to.AddDate(0, 0, 1), nil
}

type eventRecorder struct {
	sink   ports.BookingEventSink
	logger logger.Logger
}

func (r eventRecorder) record(ctx context.Context, bookingID string, typ domain.BookingEventType, at time.Time, payload map[string]any) {
	event := domain.BookingEvent{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		Type:       typ,
		Payload:    payload,
		OccurredAt: at,
	}

	go func(ctx context.Context) {
		if err := r.sink.Record(ctx, event); err != nil {
			r.logger.Warn("failed to record booking event",
				logger.String("booking_id", bookingID),
				logger.String("event_type", string(typ)),
				logger.String("error", err.Error()),
			)
		}
	}(context.WithoutCancel(ctx))
}
