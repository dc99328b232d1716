package domain

import "time"

type BookingStatus string

const (
	BookingStatusHold      BookingStatus = "HOLD"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// BlockingStatuses участвуют в exclusion constraint и в расчёте доступности.
var BlockingStatuses = []BookingStatus{
	BookingStatusHold,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusNoShow,
}

type BookingSource string

const (
	SourceWeb       BookingSource = "WEB"
	SourceWhatsApp  BookingSource = "WHATSAPP"
	SourceReception BookingSource = "RECEPTION"
)

type BookingKind string

const KindStandard BookingKind = "STANDARD"

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

const CancelledByReception = "RECEPTION"

type Booking struct {
	ID            string         `json:"id"`
	CourtID       string         `json:"court_id"`
	CustomerID    *string        `json:"customer_id"`
	UserID        *string        `json:"user_id"`
	StartAt       time.Time      `json:"start_at"`
	EndAt         time.Time      `json:"end_at"`
	Status        BookingStatus  `json:"status"`
	Source        BookingSource  `json:"source"`
	Kind          BookingKind    `json:"kind"`
	HoldExpiresAt *time.Time     `json:"hold_expires_at"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	PaidAmount    *float64       `json:"paid_amount"`
	PaymentMethod *PaymentMethod `json:"payment_method"`
	PaidAt        *time.Time     `json:"paid_at"`
	CancelledBy   *string        `json:"cancelled_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type BookingView struct {
	Booking
	CourtName     string  `json:"court_name"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
}

type CreateHoldInput struct {
	CourtID string
	StartAt time.Time
	EndAt   time.Time
	Source  BookingSource
}

type ConfirmInput struct {
	HoldID   string
	FullName string
	Phone    string
	Email    string
	UserID   string
}

type MarkPaidInput struct {
	BookingID string
	Amount    float64
	Method    PaymentMethod
}

type SetStatusInput struct {
	BookingID string
	Status    BookingStatus
	Actor     string
}

type EmailOutcome struct {
	To    string `json:"to,omitempty"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

type ConfirmResult struct {
	Booking          *Booking
	Customer         *Customer
	Court            *Court
	Amount           float64
	ToleranceMinutes int
	Email            EmailOutcome
}

func (s BookingSource) Valid() bool {
	switch s {
	case SourceWeb, SourceWhatsApp, SourceReception:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}
