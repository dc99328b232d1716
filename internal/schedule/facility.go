package schedule

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Facility struct {
	Zone        *time.Location
	OpenHour    int
	CloseHour   int
	Step        time.Duration
	MinDuration time.Duration
}

func ParseOffset(offset string) (*time.Location, error) {
	t, err := time.Parse("-07:00", offset)
	if err != nil {
		return nil, fmt.Errorf("parse utc offset %q: %w", offset, err)
	}
	_, secs := t.Zone()
	return time.FixedZone(offset, secs), nil
}

func (f Facility) ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, f.Zone)
}

func (f Facility) FormatDate(t time.Time) string {
	return t.In(f.Zone).Format(dateLayout)
}

func (f Facility) Day(t time.Time) time.Time {
	local := t.In(f.Zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.Zone)
}

func (f Facility) OpenAt(day time.Time) time.Time {
	return f.Day(day).Add(time.Duration(f.OpenHour) * time.Hour)
}

func (f Facility) CloseAt(day time.Time) time.Time {
	return f.Day(day).Add(time.Duration(f.CloseHour) * time.Hour)
}

// Contains: [start, end) внутри часов работы дня start.
func (f Facility) Contains(start, end time.Time) bool {
	return !start.Before(f.OpenAt(start)) && !end.After(f.CloseAt(start))
}

func (f Facility) Slots(day time.Time, bookings []Interval, now time.Time) []Slot {
	slots := Grid(f.Day(day), f.OpenHour, f.CloseHour, f.Step)
	Classify(slots, bookings, now)
	MarkStarts(slots, f.CloseAt(day), f.MinDuration)
	return slots
}
