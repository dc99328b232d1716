package events

import (
	"context"
	"errors"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
)

// Fanout отдаёт событие всем sink, ошибка одного не останавливает остальные.
type Fanout struct {
	sinks []ports.BookingEventSink
}

func NewFanout(sinks ...ports.BookingEventSink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Record(ctx context.Context, event domain.BookingEvent) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Record(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
