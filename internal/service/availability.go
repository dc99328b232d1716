package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/schedule"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
)

type AvailabilityService struct {
	courtRepo   ports.CourtRepo
	bookingRepo ports.BookingRepo
	policy      Policy
	now         func() time.Time
}

func NewAvailabilityService(courtRepo ports.CourtRepo, bookingRepo ports.BookingRepo, policy Policy) *AvailabilityService {
	return &AvailabilityService{
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		policy:      policy,
		now:         time.Now,
	}
}

func (s *AvailabilityService) GetAvailability(ctx context.Context, date string) (*domain.DayAvailability, error) {
	f := s.policy.Facility

	day, err := f.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, date)
	}

	courts, err := s.courtRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}

	bookings, err := s.bookingRepo.ListBlocking(ctx, f.OpenAt(day), f.CloseAt(day))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	byCourt := make(map[string][]schedule.Interval, len(courts))
	for _, b := range bookings {
		byCourt[b.CourtID] = append(byCourt[b.CourtID], schedule.IntervalOf(b))
	}

	now := s.now()
	res := &domain.DayAvailability{
		Date:        f.FormatDate(day),
		Courts:      make([]domain.CourtAvailability, 0, len(courts)),
		MinDuration: f.MinDuration,
		Step:        f.Step,
	}
	for _, c := range courts {
		res.Courts = append(res.Courts, domain.CourtAvailability{
			Court: *c,
			Slots: f.Slots(day, byCourt[c.ID], now),
		})
	}

	return res, nil
}

func (s *AvailabilityService) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	return s.courtRepo.ListActive(ctx)
}
