package schedule

import (
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type Slot = domain.Slot

// Grid режет [open, close) на слоты по step. day - локальная полночь, хвост короче step отбрасывается.
func Grid(day time.Time, openHour, closeHour int, step time.Duration) []Slot {
	if step <= 0 || closeHour <= openHour {
		return nil
	}

	open := day.Add(time.Duration(openHour) * time.Hour)
	closeAt := day.Add(time.Duration(closeHour) * time.Hour)

	slots := make([]Slot, 0, int(closeAt.Sub(open)/step))
	for start := open; !start.Add(step).After(closeAt); start = start.Add(step) {
		slots = append(slots, Slot{
			Start:  start,
			End:    start.Add(step),
			Status: domain.SlotAvailable,
		})
	}

	return slots
}
