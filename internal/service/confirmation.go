package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/phone"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ConfirmationService struct {
	bookingRepo  ports.BookingRepo
	courtRepo    ports.CourtRepo
	customerRepo ports.CustomerRepo
	profileRepo  ports.ProfileRepo
	mailer       ports.Mailer
	staff        ports.StaffNotifier
	events       eventRecorder
	policy       Policy
	logger       logger.Logger
	now          func() time.Time
}

func NewConfirmationService(
	bookingRepo ports.BookingRepo,
	courtRepo ports.CourtRepo,
	customerRepo ports.CustomerRepo,
	profileRepo ports.ProfileRepo,
	mailer ports.Mailer,
	staff ports.StaffNotifier,
	sink ports.BookingEventSink,
	policy Policy,
	logger logger.Logger,
) *ConfirmationService {
	return &ConfirmationService{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		mailer:       mailer,
		staff:        staff,
		events:       eventRecorder{sink: sink, logger: logger},
		policy:       policy,
		logger:       logger,
		now:          time.Now,
	}
}

// Письмо best-effort: результат отправки возвращается в ответе, не ошибкой.
func (s *ConfirmationService) Confirm(ctx context.Context, in domain.ConfirmInput) (*domain.ConfirmResult, error) {
	hold, err := s.bookingRepo.GetByID(ctx, in.HoldID)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}
	if err = hold.HoldError(s.now()); err != nil {
		return nil, s.rejectHold(ctx, hold.ID, err)
	}

	var profile *domain.Profile
	if in.UserID != "" {
		profile, err = s.profileRepo.GetByUserID(ctx, in.UserID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("get profile: %w", err)
		}
	}

	customer, err := s.resolveCustomer(ctx, in, profile)
	if err != nil {
		return nil, err
	}

	var userID *string
	if in.UserID != "" {
		userID = &in.UserID
	}

	// срок холда проверяется заново в самом UPDATE
	booking, err := s.bookingRepo.Confirm(ctx, hold.ID, customer.ID, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", s.rejectHold(ctx, hold.ID, err))
	}

	amount := s.policy.Tariff.Amount(booking.StartAt, booking.EndAt)

	court, err := s.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		s.logger.Error("failed to get court for confirmation",
			logger.String("court_id", booking.CourtID),
			logger.String("error", err.Error()),
		)
		court = &domain.Court{ID: booking.CourtID, Name: "N/A"}
	}

	result := &domain.ConfirmResult{
		Booking:          booking,
		Customer:         customer,
		Court:            court,
		Amount:           amount,
		ToleranceMinutes: s.policy.ToleranceMinutes,
	}
	result.Email = s.sendConfirmationEmail(ctx, result)

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("customer_id", customer.ID),
		logger.Bool("authenticated", userID != nil),
		logger.Any("amount", amount),
		logger.Bool("email_sent", result.Email.Sent),
	)

	go s.staff.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, customer, court, amount)
	s.events.record(ctx, booking.ID, domain.EventConfirmed, s.now(), map[string]any{
		"customer_id": customer.ID,
		"amount":      amount,
		"email_sent":  result.Email.Sent,
	})

	return result, nil
}

// данные профиля авторизованного пользователя важнее формы
func (s *ConfirmationService) resolveCustomer(ctx context.Context, in domain.ConfirmInput, p *domain.Profile) (*domain.Customer, error) {
	name, rawPhone, email := in.FullName, in.Phone, in.Email
	if p != nil {
		if v := deref(p.FullName); v != "" {
			name = v
		}
		if v := deref(p.Phone); v != "" {
			rawPhone = v
		}
		if email == "" {
			email = deref(p.Email)
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	phoneE164, err := phone.Normalize(rawPhone, s.policy.PhoneRegion)
	if err != nil {
		return nil, fmt.Errorf("%w: phone %q is not a valid number", domain.ErrValidation, rawPhone)
	}

	existing, err := s.customerRepo.GetByPhone(ctx, phoneE164)
	switch {
	case err == nil:
		return s.refreshCustomer(ctx, existing, name, email, p)
	case !errors.Is(err, domain.ErrCustomerNotFound):
		return nil, fmt.Errorf("find customer: %w", err)
	}

	c := &domain.Customer{
		ID:        uuid.New().String(),
		FullName:  name,
		PhoneE164: phoneE164,
		IsActive:  true,
	}
	applyProfile(c, email, p)

	err = s.customerRepo.Create(ctx, c)
	if errors.Is(err, domain.ErrPhoneTaken) {
		// параллельное подтверждение успело создать клиента с тем же телефоном
		existing, err = s.customerRepo.GetByPhone(ctx, phoneE164)
		if err != nil {
			return nil, fmt.Errorf("find customer: %w", err)
		}
		return s.refreshCustomer(ctx, existing, name, email, p)
	}
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info("customer created",
		logger.String("customer_id", c.ID),
		logger.String("phone", phoneE164),
	)

	return c, nil
}

func (s *ConfirmationService) refreshCustomer(ctx context.Context, c *domain.Customer, name, email string, p *domain.Profile) (*domain.Customer, error) {
	c.FullName = name
	applyProfile(c, email, p)

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

func applyProfile(c *domain.Customer, email string, p *domain.Profile) {
	if email != "" {
		c.Email = &email
	}
	if p == nil {
		return
	}
	c.Birthday = p.Birthday
	c.Notes = p.Notes
	c.Sex = p.Sex
	c.Division = p.Division
}

func (s *ConfirmationService) sendConfirmationEmail(ctx context.Context, res *domain.ConfirmResult) domain.EmailOutcome {
	to := deref(res.Customer.Email)
	if to == "" {
		return domain.EmailOutcome{Error: "no email address provided"}
	}

	email := buildConfirmationEmail(to, res, s.policy)
	if err := s.mailer.Send(ctx, email); err != nil {
		s.logger.Warn("confirmation email failed",
			logger.String("booking_id", res.Booking.ID),
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return domain.EmailOutcome{To: to, Error: err.Error()}
	}

	return domain.EmailOutcome{To: to, Sent: true}
}

func (s *ConfirmationService) rejectHold(ctx context.Context, id string, err error) error {
	if errors.Is(err, domain.ErrHoldExpired) {
		discardExpiredHold(ctx, s.bookingRepo, s.logger, id, s.now())
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
