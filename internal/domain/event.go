package domain

import "time"

type BookingEventType string

const (
	EventHoldCreated   BookingEventType = "HOLD_CREATED"
	EventHoldExtended  BookingEventType = "HOLD_EXTENDED"
	EventHoldReleased  BookingEventType = "WEB_HOLD_RELEASED"
	EventConfirmed     BookingEventType = "CONFIRMED"
	EventStatusChanged BookingEventType = "STATUS_CHANGED"
	EventPaid          BookingEventType = "PAID"
)

type BookingEvent struct {
	ID         string           `json:"id"`
	BookingID  string           `json:"booking_id"`
	Type       BookingEventType `json:"event_type"`
	Payload    map[string]any   `json:"payload,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}
