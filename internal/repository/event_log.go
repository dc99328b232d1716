package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type EventLogRepository struct {
	db *dbpg.DB
}

func NewEventLogRepo(db *dbpg.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

func (r *EventLogRepository) Record(ctx context.Context, e domain.BookingEvent) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	if e.Payload == nil {
		payload = []byte("{}")
	}

	query := `INSERT INTO booking_events (id, booking_id, event_type, payload, created_at)
			  VALUES ($1, $2, $3, $4::jsonb, $5)`

	if _, err = r.db.ExecContext(ctx, query, e.ID, e.BookingID, e.Type, string(payload), e.OccurredAt); err != nil {
		return fmt.Errorf("insert booking event: %w", err)
	}

	return nil
}
