package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Просроченные веб-холды зачищаются лениво перед новым холдом, фонового reaper нет.
type HoldService struct {
	bookingRepo ports.BookingRepo
	courtRepo   ports.CourtRepo
	events      eventRecorder
	policy      Policy
	logger      logger.Logger
	now         func() time.Time
}

func NewHoldService(
	bookingRepo ports.BookingRepo,
	courtRepo ports.CourtRepo,
	sink ports.BookingEventSink,
	policy Policy,
	logger logger.Logger,
) *HoldService {
	return &HoldService{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		events:      eventRecorder{sink: sink, logger: logger},
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *HoldService) CreateHold(ctx context.Context, in domain.CreateHoldInput) (*domain.Booking, error) {
	if !in.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrValidation, in.Source)
	}
	if err := s.policy.validateRange(in.StartAt, in.EndAt); err != nil {
		return nil, err
	}

	now := s.now()
	if in.StartAt.Before(now) {
		return nil, fmt.Errorf("%w: start is in the past", domain.ErrValidation)
	}

	court, err := s.courtRepo.GetByID(ctx, in.CourtID)
	if err != nil {
		return nil, fmt.Errorf("check court: %w", err)
	}
	if !court.IsActive {
		return nil, fmt.Errorf("check court: %w", domain.ErrCourtNotFound)
	}

	// зачистка просроченных веб-холдов, иначе они держат constraint
	swept, err := s.bookingRepo.SweepExpiredHolds(ctx, now)
	if err != nil {
		s.logger.Warn("expired holds sweep failed", logger.String("error", err.Error()))
	} else if swept > 0 {
		s.logger.Info("expired holds swept", logger.Int64("count", swept))
	}

	hold := &domain.Booking{
		ID:            uuid.New().String(),
		CourtID:       court.ID,
		StartAt:       in.StartAt,
		EndAt:         in.EndAt,
		Status:        domain.BookingStatusHold,
		Source:        in.Source,
		Kind:          domain.KindStandard,
		PaymentStatus: domain.PaymentUnpaid,
	}
	// TTL только у веб-холдов: ресепшен и WhatsApp снимают свои холды отменой
	if in.Source == domain.SourceWeb {
		expiresAt := now.Add(s.policy.HoldTTL)
		hold.HoldExpiresAt = &expiresAt
	}
	if err = s.bookingRepo.CreateHold(ctx, hold); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}

	s.logger.Info("hold created",
		logger.String("booking_id", hold.ID),
		logger.String("court_id", hold.CourtID),
		logger.Time("start_at", hold.StartAt),
		logger.Time("end_at", hold.EndAt),
		logger.String("source", string(hold.Source)),
	)
	s.events.record(ctx, hold.ID, domain.EventHoldCreated, now, map[string]any{
		"court_id": hold.CourtID,
		"start_at": hold.StartAt,
		"end_at":   hold.EndAt,
		"source":   hold.Source,
	})

	return hold, nil
}

func (s *HoldService) ExtendHold(ctx context.Context, id string, newEnd time.Time) (*domain.Booking, error) {
	now := s.now()

	hold, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}
	if err = hold.HoldError(now); err != nil {
		return nil, s.rejectHold(ctx, id, err, now)
	}
	if err = s.policy.validateRange(hold.StartAt, newEnd); err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.ExtendHold(ctx, id, newEnd, now, now.Add(s.policy.HoldTTL))
	if err != nil {
		return nil, fmt.Errorf("extend hold: %w", s.rejectHold(ctx, id, err, now))
	}

	s.logger.Info("hold extended",
		logger.String("booking_id", id),
		logger.Time("end_at", newEnd),
	)
	s.events.record(ctx, id, domain.EventHoldExtended, now, map[string]any{
		"previous_end_at": hold.EndAt,
		"end_at":          updated.EndAt,
	})

	return updated, nil
}

// ReleaseHold идемпотентен.
func (s *HoldService) ReleaseHold(ctx context.Context, id string) (bool, error) {
	released, err := s.bookingRepo.ReleaseHold(ctx, id)
	if err != nil {
		return false, fmt.Errorf("release hold: %w", err)
	}

	if released {
		s.logger.Info("hold released", logger.String("booking_id", id))
		s.events.record(ctx, id, domain.EventHoldReleased, s.now(), nil)
	}

	return released, nil
}

// rejectHold удаляет просроченный холд и возвращает err как есть.
func (s *HoldService) rejectHold(ctx context.Context, id string, err error, now time.Time) error {
	if errors.Is(err, domain.ErrHoldExpired) {
		discardExpiredHold(ctx, s.bookingRepo, s.logger, id, now)
	}
	return err
}

func discardExpiredHold(ctx context.Context, repo ports.BookingRepo, log logger.Logger, id string, now time.Time) {
	if err := repo.DeleteExpiredHold(ctx, id, now); err != nil {
		log.Warn("failed to delete expired hold",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
		return
	}
	log.Info("expired hold deleted", logger.String("booking_id", id))
}
