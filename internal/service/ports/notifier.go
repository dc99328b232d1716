package ports

import (
	"context"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

type StaffNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, customer *domain.Customer, court *domain.Court, amount float64)
	NotifyBookingPaid(ctx context.Context, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking)
}

type BookingEventSink interface {
	Record(ctx context.Context, event domain.BookingEvent) error
}
