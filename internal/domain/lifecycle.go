package domain

import "time"

// Правила переходов. SQL-предикаты в репозитории повторяют их один в один,
// здесь они используются, чтобы объяснить, почему условный UPDATE не сработал.

func (b *Booking) HoldExpired(now time.Time) bool {
	return b.Status == BookingStatusHold &&
		b.HoldExpiresAt != nil &&
		!b.HoldExpiresAt.After(now)
}

func (b *Booking) HoldError(now time.Time) error {
	if b.Source != SourceWeb {
		return ErrNotWebHold
	}
	if b.Status != BookingStatusHold {
		return ErrNotHold
	}
	if b.HoldExpired(now) {
		return ErrHoldExpired
	}
	return nil
}

func (b *Booking) CancelError() error {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusNoShow:
		return ErrCancelAttendance
	case BookingStatusCancelled:
		return ErrAlreadyCancelled
	}
	if b.PaymentStatus == PaymentPaid {
		return ErrCancelPaid
	}
	return nil
}

func (b *Booking) AttendanceError() error {
	if b.Status != BookingStatusConfirmed {
		return ErrAttendanceNotConfirmed
	}
	if b.PaymentStatus != PaymentPaid {
		return ErrAttendanceUnpaid
	}
	return nil
}

func (b *Booking) PaymentError() error {
	if b.PaymentStatus == PaymentPaid {
		return ErrAlreadyPaid
	}
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusCompleted {
		return ErrPaymentNotAllowed
	}
	return nil
}
