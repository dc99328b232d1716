package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type LifecycleService struct {
	bookingRepo  ports.BookingRepo
	customerRepo ports.CustomerRepo
	staff        ports.StaffNotifier
	events       eventRecorder
	policy       Policy
	logger       logger.Logger
	now          func() time.Time
}

func NewLifecycleService(
	bookingRepo ports.BookingRepo,
	customerRepo ports.CustomerRepo,
	staff ports.StaffNotifier,
	sink ports.BookingEventSink,
	policy Policy,
	logger logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		staff:        staff,
		events:       eventRecorder{sink: sink, logger: logger},
		policy:       policy,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *LifecycleService) SetStatus(ctx context.Context, in domain.SetStatusInput) (*domain.Booking, error) {
	var (
		b   *domain.Booking
		err error
	)

	switch in.Status {
	case domain.BookingStatusCancelled:
		actor := in.Actor
		if actor == "" {
			actor = domain.CancelledByReception
		}
		b, err = s.bookingRepo.Cancel(ctx, in.BookingID, actor)
	case domain.BookingStatusCompleted, domain.BookingStatusNoShow:
		b, err = s.bookingRepo.MarkAttendance(ctx, in.BookingID, in.Status)
	default:
		return nil, fmt.Errorf("%w: status must be one of CANCELLED, COMPLETED, NO_SHOW", domain.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("set status %s: %w", in.Status, err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("status", string(b.Status)),
	)
	s.events.record(ctx, b.ID, domain.EventStatusChanged, s.now(), map[string]any{
		"status":       b.Status,
		"cancelled_by": b.CancelledBy,
	})
	if b.Status == domain.BookingStatusCancelled {
		go s.staff.NotifyBookingCancelled(context.WithoutCancel(ctx), b)
	}

	return b, nil
}

func (s *LifecycleService) MarkPaid(ctx context.Context, in domain.MarkPaidInput) (*domain.Booking, error) {
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !in.Method.Valid() {
		return nil, fmt.Errorf("%w: method must be one of CASH, CARD, TRANSFER", domain.ErrValidation)
	}
	in.Amount = math.Round(in.Amount*100) / 100

	now := s.now()
	b, err := s.bookingRepo.MarkPaid(ctx, in, now)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	s.logger.Info("booking paid",
		logger.String("booking_id", b.ID),
		logger.Any("amount", in.Amount),
		logger.String("method", string(in.Method)),
	)
	s.events.record(ctx, b.ID, domain.EventPaid, now, map[string]any{
		"amount": in.Amount,
		"method": in.Method,
	})
	go s.staff.NotifyBookingPaid(context.WithoutCancel(ctx), b)

	return b, nil
}

func (s *LifecycleService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *LifecycleService) List(ctx context.Context, startDate, endDate string) ([]*domain.BookingView, error) {
	from, to, err := s.policy.dayWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if to.Sub(from) > 62*24*time.Hour {
		return nil, fmt.Errorf("%w: range is limited to 62 days", domain.ErrValidation)
	}

	return s.bookingRepo.ListForReception(ctx, from, to)
}

func (s *LifecycleService) AttachCustomer(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}

	b, err := s.bookingRepo.AttachCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, fmt.Errorf("attach customer: %w", err)
	}

	s.logger.Info("customer attached",
		logger.String("booking_id", bookingID),
		logger.String("customer_id", customerID),
	)

	return b, nil
}
