package domain

import "errors"

var (
	ErrCourtNotFound    = errors.New("court not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProfileNotFound  = errors.New("profile not found")
)

var (
	ErrSlotUnavailable        = errors.New("slot was just taken, check availability and pick another")
	ErrHoldExpired            = errors.New("hold has expired, select the slot again")
	ErrNotHold                = errors.New("booking is not in HOLD status")
	ErrNotWebHold             = errors.New("booking was not created from the web")
	ErrAlreadyPaid            = errors.New("booking is already paid")
	ErrPaymentNotAllowed      = errors.New("only CONFIRMED or COMPLETED bookings can be paid")
	ErrCancelPaid             = errors.New("paid bookings cannot be cancelled")
	ErrCancelAttendance       = errors.New("attendance already captured, booking cannot be cancelled")
	ErrAlreadyCancelled       = errors.New("booking is already cancelled")
	ErrAttendanceUnpaid       = errors.New("booking must be paid before marking attendance")
	ErrAttendanceNotConfirmed = errors.New("attendance can only be marked on CONFIRMED bookings")
	ErrConcurrentUpdate       = errors.New("booking was modified concurrently, reload and retry")
)

var (
	ErrPhoneTaken = errors.New("customer with this phone already exists")
)

var (
	ErrValidation = errors.New("validation error")
)

var notFoundErrors = []error{
	ErrCourtNotFound,
	ErrBookingNotFound,
	ErrCustomerNotFound,
	ErrProfileNotFound,
}

var conflictErrors = []error{
	ErrSlotUnavailable,
	ErrHoldExpired,
	ErrNotHold,
	ErrNotWebHold,
	ErrAlreadyPaid,
	ErrPaymentNotAllowed,
	ErrCancelPaid,
	ErrCancelAttendance,
	ErrAlreadyCancelled,
	ErrAttendanceUnpaid,
	ErrAttendanceNotConfirmed,
	ErrConcurrentUpdate,
	ErrPhoneTaken,
}

func IsNotFound(err error) bool {
	return isAny(err, notFoundErrors)
}

func IsConflict(err error) bool {
	return isAny(err, conflictErrors)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
