package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, court_id, customer_id, user_id, start_at, end_at,
	status, source, kind, hold_expires_at,
	payment_status, paid_amount, payment_method, paid_at,
	cancelled_by, created_at, updated_at`

var (
	payableStatuses    = []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCompleted}
	cancelableStatuses = []domain.BookingStatus{domain.BookingStatusHold, domain.BookingStatusConfirmed}
)

// Все переходы состояния - условные UPDATE без ретраев: конфликт не лечится повтором.
// Ретраи только для чтения и идемпотентной зачистки холдов.
type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) CreateHold(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, court_id, start_at, end_at, status, source, kind,
                      hold_expires_at, payment_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			  RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx, query, b.ID, b.CourtID, b.StartAt, b.EndAt,
		b.Status, b.Source, b.Kind, b.HoldExpiresAt, b.PaymentStatus,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert hold: %w", err)
	}

	return nil
}

func (r *BookingRepository) SweepExpiredHolds(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM bookings
			  WHERE status = $1 AND source = $2
			    AND hold_expires_at IS NOT NULL
			    AND hold_expires_at <= $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.BookingStatusHold, domain.SourceWeb, now)
	if err != nil {
		return 0, fmt.Errorf("sweep expired holds: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sweep rows affected: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) ExtendHold(ctx context.Context, id string, newEnd, now, expiresAt time.Time) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET end_at = $2, hold_expires_at = $4, updated_at = now()
			  WHERE id = $1
			    AND status = $5 AND source = $6
			    AND (hold_expires_at IS NULL OR hold_expires_at > $3)
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(
		ctx, query, id, newEnd, now, expiresAt,
		domain.BookingStatusHold, domain.SourceWeb,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explain(ctx, id, func(b *domain.Booking) error {
				return b.HoldError(now)
			})
		}
		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("extend hold: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ReleaseHold(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM bookings WHERE id = $1 AND status = $2 AND source = $3`

	res, err := r.db.ExecContext(ctx, query, id, domain.BookingStatusHold, domain.SourceWeb)
	if err != nil {
		return false, fmt.Errorf("release hold: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("release rows affected: %w", err)
	}

	return n > 0, nil
}

func (r *BookingRepository) DeleteExpiredHold(ctx context.Context, id string, now time.Time) error {
	query := `DELETE FROM bookings
			  WHERE id = $1 AND status = $2 AND source = $3
			    AND hold_expires_at IS NOT NULL
			    AND hold_expires_at <= $4`

	if _, err := r.db.ExecContext(ctx, query, id, domain.BookingStatusHold, domain.SourceWeb, now); err != nil {
		return fmt.Errorf("delete expired hold: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Confirm(ctx context.Context, id, customerID string, userID *string, now time.Time) (*domain.Booking, error) {
	// Атомарно проверяем статус, источник и срок холда
	query := `UPDATE bookings
			  SET status = $5, customer_id = $2, user_id = $3,
			      hold_expires_at = NULL, cancelled_by = NULL, updated_at = now()
			  WHERE id = $1
			    AND status = $6 AND source = $7
			    AND (hold_expires_at IS NULL OR hold_expires_at > $4)
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(
		ctx, query, id, customerID, userID, now,
		domain.BookingStatusConfirmed, domain.BookingStatusHold, domain.SourceWeb,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explain(ctx, id, func(b *domain.Booking) error {
				return b.HoldError(now)
			})
		}
		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id, actor string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, cancelled_by = $2, updated_at = now()
			  WHERE id = $1
			    AND status = ANY($4)
			    AND payment_status = $5
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(
		ctx, query, id, actor, domain.BookingStatusCancelled,
		pq.Array(cancelableStatuses), domain.PaymentUnpaid,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explain(ctx, id, (*domain.Booking).CancelError)
		}
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) MarkAttendance(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, cancelled_by = NULL, updated_at = now()
			  WHERE id = $1
			    AND status = $3
			    AND payment_status = $4
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(
		ctx, query, id, status, domain.BookingStatusConfirmed, domain.PaymentPaid,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explain(ctx, id, (*domain.Booking).AttendanceError)
		}
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, in domain.MarkPaidInput, now time.Time) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET payment_status = $5, paid_amount = $2, payment_method = $3,
			      paid_at = $4, updated_at = now()
			  WHERE id = $1
			    AND status = ANY($6)
			    AND payment_status = $7
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(
		ctx, query, in.BookingID, in.Amount, in.Method, now,
		domain.PaymentPaid, pq.Array(payableStatuses), domain.PaymentUnpaid,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explain(ctx, in.BookingID, (*domain.Booking).PaymentError)
		}
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) AttachCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET customer_id = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("attach customer: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListBlocking(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = ANY($3)
			    AND start_at < $2 AND end_at > $1
			  ORDER BY court_id, start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, pq.Array(domain.BlockingStatuses))
	if err != nil {
		return nil, fmt.Errorf("list blocking bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListForReception(ctx context.Context, from, to time.Time) ([]*domain.BookingView, error) {
	// отменённые клиентом не показываем, отменённые ресепшеном - да
	query := `SELECT b.id, b.court_id, b.customer_id, b.user_id, b.start_at, b.end_at,
	                 b.status, b.source, b.kind, b.hold_expires_at,
	                 b.payment_status, b.paid_amount, b.payment_method, b.paid_at,
	                 b.cancelled_by, b.created_at, b.updated_at,
	                 c.name, cu.full_name, cu.phone_e164
			  FROM bookings b
			  JOIN courts c ON c.id = b.court_id
			  LEFT JOIN customers cu ON cu.id = b.customer_id
			  WHERE b.start_at < $2 AND b.end_at > $1
			    AND (b.status <> $3 OR b.cancelled_by = $4)
			  ORDER BY b.start_at, c.name`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, from, to,
		domain.BookingStatusCancelled, domain.CancelledByReception,
	)
	if err != nil {
		return nil, fmt.Errorf("list reception bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingView
	for rows.Next() {
		var v domain.BookingView
		var customerName, customerPhone sql.NullString
		b, err := scanBooking(rows, &v.CourtName, &customerName, &customerPhone)
		if err != nil {
			return nil, fmt.Errorf("scan reception booking: %w", err)
		}
		v.Booking = *b
		v.CustomerName = nullString(customerName)
		v.CustomerPhone = nullString(customerPhone)
		res = append(res, &v)
	}

	return res, rows.Err()
}

// explain перечитывает бронь, если условный UPDATE не нашёл строку, и возвращает нарушенное правило.
func (r *BookingRepository) explain(ctx context.Context, id string, rule func(*domain.Booking) error) error {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = rule(b); err != nil {
		return err
	}
	return domain.ErrConcurrentUpdate
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, extra ...any) (*domain.Booking, error) {
	var (
		b                     domain.Booking
		customerID, userID    sql.NullString
		method, cancelledBy   sql.NullString
		holdExpiresAt, paidAt sql.NullTime
		paidAmount            sql.NullFloat64
	)

	dest := []any{
		&b.ID, &b.CourtID, &customerID, &userID, &b.StartAt, &b.EndAt,
		&b.Status, &b.Source, &b.Kind, &holdExpiresAt,
		&b.PaymentStatus, &paidAmount, &method, &paidAt,
		&cancelledBy, &b.CreatedAt, &b.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	b.CustomerID = nullString(customerID)
	b.UserID = nullString(userID)
	b.HoldExpiresAt = nullTime(holdExpiresAt)
	b.PaidAt = nullTime(paidAt)
	b.CancelledBy = nullString(cancelledBy)
	if paidAmount.Valid {
		b.PaidAmount = &paidAmount.Float64
	}
	if method.Valid {
		m := domain.PaymentMethod(method.String)
		b.PaymentMethod = &m
	}

	return &b, nil
}
