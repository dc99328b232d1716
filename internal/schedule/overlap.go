package schedule

import (
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type Interval struct {
	Start     time.Time
	End       time.Time
	Status    domain.BookingStatus
	ExpiresAt *time.Time
}

func IntervalOf(b *domain.Booking) Interval {
	return Interval{
		Start:     b.StartAt,
		End:       b.EndAt,
		Status:    b.Status,
		ExpiresAt: b.HoldExpiresAt,
	}
}

// полуинтервалы: стык не считается пересечением
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func (iv Interval) blocking(now time.Time) (blocks, taken bool) {
	switch iv.Status {
	case domain.BookingStatusConfirmed, domain.BookingStatusCompleted, domain.BookingStatusNoShow:
		return true, true
	case domain.BookingStatusHold:
		return iv.ExpiresAt == nil || iv.ExpiresAt.After(now), false
	}
	return false, false
}

// Classify: TAKEN важнее HOLD.
func Classify(slots []Slot, bookings []Interval, now time.Time) {
	for i := range slots {
		slots[i].Status = classify(slots[i], bookings, now)
	}
}

func classify(s Slot, bookings []Interval, now time.Time) domain.SlotStatus {
	status := domain.SlotAvailable
	for _, b := range bookings {
		blocks, taken := b.blocking(now)
		if !blocks || !Overlaps(s.Start, s.End, b.Start, b.End) {
			continue
		}
		if taken {
			return domain.SlotTaken
		}
		status = domain.SlotHold
	}
	return status
}

// MarkStarts ставит CanStart, если до закрытия помещается minDuration свободных слотов.
// Слоты уже классифицированы и упорядочены.
func MarkStarts(slots []Slot, closeAt time.Time, minDuration time.Duration) {
	for i := range slots {
		slots[i].CanStart = canStart(slots, i, closeAt, minDuration)
	}
}

func canStart(slots []Slot, i int, closeAt time.Time, minDuration time.Duration) bool {
	end := slots[i].Start.Add(minDuration)
	if end.After(closeAt) {
		return false
	}

	covered := slots[i].Start
	for j := i; j < len(slots) && slots[j].Start.Before(end); j++ {
		if slots[j].Status != domain.SlotAvailable || !slots[j].Start.Equal(covered) {
			return false
		}
		covered = slots[j].End
	}

	return !covered.Before(end)
}
