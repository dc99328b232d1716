package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/handler/dto"
	"github.com/Roy125512/SacrePadel/internal/metrics"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// UserIDHeader выставляет auth-шлюз.
const UserIDHeader = "X-User-ID"

type AvailabilitySvc interface {
	GetAvailability(ctx context.Context, date string) (*domain.DayAvailability, error)
	ListCourts(ctx context.Context) ([]*domain.Court, error)
}

type HoldSvc interface {
	CreateHold(ctx context.Context, in domain.CreateHoldInput) (*domain.Booking, error)
	ExtendHold(ctx context.Context, id string, newEnd time.Time) (*domain.Booking, error)
	ReleaseHold(ctx context.Context, id string) (bool, error)
}

type ConfirmationSvc interface {
	Confirm(ctx context.Context, in domain.ConfirmInput) (*domain.ConfirmResult, error)
}

type LifecycleSvc interface {
	SetStatus(ctx context.Context, in domain.SetStatusInput) (*domain.Booking, error)
	MarkPaid(ctx context.Context, in domain.MarkPaidInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, startDate, endDate string) ([]*domain.BookingView, error)
	AttachCustomer(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
}

type CustomerSvc interface {
	Search(ctx context.Context, query string) ([]*domain.Customer, error)
}

type Handler struct {
	availability AvailabilitySvc
	holds        HoldSvc
	confirmation ConfirmationSvc
	lifecycle    LifecycleSvc
	customers    CustomerSvc
	zone         *time.Location
}

func NewHandler(
	availability AvailabilitySvc,
	holds HoldSvc,
	confirmation ConfirmationSvc,
	lifecycle LifecycleSvc,
	customers CustomerSvc,
	zone *time.Location,
) *Handler {
	return &Handler{
		availability: availability,
		holds:        holds,
		confirmation: confirmation,
		lifecycle:    lifecycle,
		customers:    customers,
		zone:         zone,
	}
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().In(h.zone).Format("2006-01-02")
	}

	day, err := h.availability.GetAvailability(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, "availability", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(day, h.zone))
}

func (h *Handler) ListCourts(c *ginext.Context) {
	courts, err := h.availability.ListCourts(c.Request.Context())
	if err != nil {
		h.handleError(c, "list_courts", err)
		return
	}

	resp := make([]dto.CourtResponse, 0, len(courts))
	for _, court := range courts {
		resp = append(resp, dto.ToCourtResponse(court))
	}

	c.JSON(http.StatusOK, resp)
}

// Holds

func (h *Handler) CreateHold(c *ginext.Context) {
	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := parseTime("start", req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := parseTime("end", req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	source := domain.SourceWeb
	if req.Source != "" {
		source = domain.BookingSource(req.Source)
	}

	hold, err := h.holds.CreateHold(c.Request.Context(), domain.CreateHoldInput{
		CourtID: req.CourtID,
		StartAt: start,
		EndAt:   end,
		Source:  source,
	})
	if err != nil {
		h.handleError(c, "create_hold", err)
		return
	}

	metrics.RecordOperation("create_hold", "ok")
	c.JSON(http.StatusCreated, dto.ToBookingResponse(hold, h.zone))
}

func (h *Handler) ExtendHold(c *ginext.Context) {
	id, ok := h.pathID(c, "hold")
	if !ok {
		return
	}

	var req dto.ExtendHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	end, err := parseTime("end", req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hold, err := h.holds.ExtendHold(c.Request.Context(), id, end)
	if err != nil {
		h.handleError(c, "extend_hold", err)
		return
	}

	metrics.RecordOperation("extend_hold", "ok")
	c.JSON(http.StatusOK, dto.ToBookingResponse(hold, h.zone))
}

func (h *Handler) ReleaseHold(c *ginext.Context) {
	id, ok := h.pathID(c, "hold")
	if !ok {
		return
	}

	released, err := h.holds.ReleaseHold(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, "release_hold", err)
		return
	}

	metrics.RecordOperation("release_hold", "ok")
	c.JSON(http.StatusOK, dto.ReleaseResponse{Released: released})
}

func (h *Handler) ConfirmHold(c *ginext.Context) {
	id, ok := h.pathID(c, "hold")
	if !ok {
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	userID := c.GetHeader(UserIDHeader)
	if userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
			return
		}
	}

	res, err := h.confirmation.Confirm(c.Request.Context(), domain.ConfirmInput{
		HoldID:   id,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		UserID:   userID,
	})
	if err != nil {
		h.handleError(c, "confirm", err)
		return
	}

	metrics.RecordOperation("confirm", "ok")
	metrics.RecordConfirmationEmail(emailStatus(res.Email))
	c.JSON(http.StatusOK, dto.ToConfirmResponse(res, h.zone))
}

// Bookings

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "booking")
	if !ok {
		return
	}

	b, err := h.lifecycle.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, "get_booking", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b, h.zone))
}

// ListBookings: ?date=YYYY-MM-DD или ?from=...&to=..., даты включительно.
func (h *Handler) ListBookings(c *ginext.Context) {
	from, to := c.Query("from"), c.Query("to")
	if date := c.Query("date"); date != "" {
		from, to = date, date
	}
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date or from and to are required"})
		return
	}

	views, err := h.lifecycle.List(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, "list_bookings", err)
		return
	}

	resp := make([]dto.ReceptionBookingResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToReceptionBookingResponse(v, h.zone))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetStatus(c *ginext.Context) {
	id, ok := h.pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.lifecycle.SetStatus(c.Request.Context(), domain.SetStatusInput{
		BookingID: id,
		Status:    domain.BookingStatus(req.Status),
		Actor:     req.Actor,
	})
	if err != nil {
		h.handleError(c, "set_status", err)
		return
	}

	metrics.RecordOperation("set_status", "ok")
	c.JSON(http.StatusOK, dto.ToBookingResponse(b, h.zone))
}

func (h *Handler) MarkPaid(c *ginext.Context) {
	id, ok := h.pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.lifecycle.MarkPaid(c.Request.Context(), domain.MarkPaidInput{
		BookingID: id,
		Amount:    req.Amount,
		Method:    domain.PaymentMethod(req.Method),
	})
	if err != nil {
		h.handleError(c, "mark_paid", err)
		return
	}

	metrics.RecordOperation("mark_paid", "ok")
	c.JSON(http.StatusOK, dto.ToBookingResponse(b, h.zone))
}

func (h *Handler) AttachCustomer(c *ginext.Context) {
	id, ok := h.pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.AttachCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.lifecycle.AttachCustomer(c.Request.Context(), id, req.CustomerID)
	if err != nil {
		h.handleError(c, "attach_customer", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b, h.zone))
}

// Customers

func (h *Handler) SearchCustomers(c *ginext.Context) {
	customers, err := h.customers.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, "search_customers", err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		resp = append(resp, dto.ToCustomerResponse(cu))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid %s id", what)})
		return "", false
	}
	return id, true
}

func parseTime(field, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format, expected RFC3339", field)
	}
	return t, nil
}

func emailStatus(e domain.EmailOutcome) string {
	switch {
	case e.Sent:
		return "sent"
	case e.To == "":
		return "skipped"
	default:
		return "failed"
	}
}

func (h *Handler) handleError(c *ginext.Context, op string, err error) {
	c.Set("error", err.Error())

	switch {
	case domain.IsNotFound(err):
		metrics.RecordOperation(op, "not_found")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case domain.IsConflict(err):
		metrics.RecordOperation(op, "conflict")
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: conflictMessage(err)})

	case errors.Is(err, domain.ErrValidation):
		metrics.RecordOperation(op, "invalid")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		metrics.RecordOperation(op, "error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// conflictMessage отдаёт клиенту текст sentinel-ошибки без контекста обёрток.
func conflictMessage(err error) string {
	if errors.Is(err, domain.ErrSlotUnavailable) {
		return domain.ErrSlotUnavailable.Error()
	}
	return err.Error()
}
