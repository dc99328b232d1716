package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
)

// mapWriteError переводит нарушения constraint в доменные ошибки, остальное - nil.
func mapWriteError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgExclusionViolation:
		return domain.ErrSlotUnavailable
	case pgForeignKeyViolation:
		switch pgErr.Constraint {
		case "bookings_court_id_fkey":
			return domain.ErrCourtNotFound
		case "bookings_customer_id_fkey":
			return domain.ErrCustomerNotFound
		}
	case pgCheckViolation:
		if pgErr.Constraint == "bookings_time_range" {
			return fmt.Errorf("%w: end must be after start", domain.ErrValidation)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
