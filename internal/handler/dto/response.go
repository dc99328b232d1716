package dto

import (
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type CourtResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SlotResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
	CanStart bool   `json:"can_start"`
}

type CourtSlotsResponse struct {
	Court CourtResponse  `json:"court"`
	Slots []SlotResponse `json:"slots"`
}

type AvailabilityResponse struct {
	Date               string               `json:"date"`
	MinDurationMinutes int                  `json:"min_duration_minutes"`
	StepMinutes        int                  `json:"step_minutes"`
	Courts             []CourtSlotsResponse `json:"courts"`
}

type BookingResponse struct {
	ID            string   `json:"id"`
	CourtID       string   `json:"court_id"`
	CustomerID    *string  `json:"customer_id"`
	UserID        *string  `json:"user_id"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	Status        string   `json:"status"`
	Source        string   `json:"source"`
	Kind          string   `json:"kind"`
	HoldExpiresAt *string  `json:"hold_expires_at"`
	PaymentStatus string   `json:"payment_status"`
	PaidAmount    *float64 `json:"paid_amount"`
	PaymentMethod *string  `json:"payment_method"`
	PaidAt        *string  `json:"paid_at"`
	CancelledBy   *string  `json:"cancelled_by"`
	CreatedAt     string   `json:"created_at"`
}

type ReceptionBookingResponse struct {
	BookingResponse
	CourtName     string  `json:"court_name"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
}

type CustomerResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
}

type EmailResponse struct {
	To    string `json:"to,omitempty"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

type ConfirmResponse struct {
	Booking          BookingResponse  `json:"booking"`
	Customer         CustomerResponse `json:"customer"`
	Court            CourtResponse    `json:"court"`
	Amount           float64          `json:"amount"`
	Currency         string           `json:"currency"`
	ToleranceMinutes int              `json:"tolerance_minutes"`
	Email            EmailResponse    `json:"email"`
}

type ReleaseResponse struct {
	Released bool `json:"released"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatTime(t time.Time, zone *time.Location) string {
	return t.In(zone).Format(time.RFC3339)
}

func formatTimePtr(t *time.Time, zone *time.Location) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t, zone)
	return &s
}

func ToCourtResponse(c *domain.Court) CourtResponse {
	return CourtResponse{ID: c.ID, Name: c.Name}
}

func ToAvailabilityResponse(a *domain.DayAvailability, zone *time.Location) AvailabilityResponse {
	courts := make([]CourtSlotsResponse, 0, len(a.Courts))
	for _, ca := range a.Courts {
		slots := make([]SlotResponse, 0, len(ca.Slots))
		for _, s := range ca.Slots {
			slots = append(slots, SlotResponse{
				Start:    formatTime(s.Start, zone),
				End:      formatTime(s.End, zone),
				Status:   string(s.Status),
				CanStart: s.CanStart,
			})
		}
		courts = append(courts, CourtSlotsResponse{Court: ToCourtResponse(&ca.Court), Slots: slots})
	}

	return AvailabilityResponse{
		Date:               a.Date,
		MinDurationMinutes: int(a.MinDuration / time.Minute),
		StepMinutes:        int(a.Step / time.Minute),
		Courts:             courts,
	}
}

func ToBookingResponse(b *domain.Booking, zone *time.Location) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		CourtID:       b.CourtID,
		CustomerID:    b.CustomerID,
		UserID:        b.UserID,
		Start:         formatTime(b.StartAt, zone),
		End:           formatTime(b.EndAt, zone),
		Status:        string(b.Status),
		Source:        string(b.Source),
		Kind:          string(b.Kind),
		HoldExpiresAt: formatTimePtr(b.HoldExpiresAt, zone),
		PaymentStatus: string(b.PaymentStatus),
		PaidAmount:    b.PaidAmount,
		PaidAt:        formatTimePtr(b.PaidAt, zone),
		CancelledBy:   b.CancelledBy,
		CreatedAt:     formatTime(b.CreatedAt, zone),
	}
	if b.PaymentMethod != nil {
		m := string(*b.PaymentMethod)
		resp.PaymentMethod = &m
	}
	return resp
}

func ToReceptionBookingResponse(v *domain.BookingView, zone *time.Location) ReceptionBookingResponse {
	return ReceptionBookingResponse{
		BookingResponse: ToBookingResponse(&v.Booking, zone),
		CourtName:       v.CourtName,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
	}
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Phone:    c.PhoneE164,
		Email:    c.Email,
	}
}

func ToConfirmResponse(r *domain.ConfirmResult, zone *time.Location) ConfirmResponse {
	return ConfirmResponse{
		Booking:          ToBookingResponse(r.Booking, zone),
		Customer:         ToCustomerResponse(r.Customer),
		Court:            ToCourtResponse(r.Court),
		Amount:           r.Amount,
		Currency:         "MXN",
		ToleranceMinutes: r.ToleranceMinutes,
		Email: EmailResponse{
			To:    r.Email.To,
			Sent:  r.Email.Sent,
			Error: r.Email.Error,
		},
	}
}
