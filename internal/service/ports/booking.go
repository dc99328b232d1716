package ports

import (
	"context"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type BookingRepo interface {
	CreateHold(ctx context.Context, b *domain.Booking) error
	SweepExpiredHolds(ctx context.Context, now time.Time) (int64, error)
	ExtendHold(ctx context.Context, id string, newEnd, now, expiresAt time.Time) (*domain.Booking, error)
	ReleaseHold(ctx context.Context, id string) (bool, error)
	DeleteExpiredHold(ctx context.Context, id string, now time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, id, customerID string, userID *string, now time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, id, actor string) (*domain.Booking, error)
	MarkAttendance(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	MarkPaid(ctx context.Context, in domain.MarkPaidInput, now time.Time) (*domain.Booking, error)
	AttachCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error)
	ListBlocking(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	ListForReception(ctx context.Context, from, to time.Time) ([]*domain.BookingView, error)
}
