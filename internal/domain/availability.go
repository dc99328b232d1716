package domain

import "time"

type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotHold      SlotStatus = "HOLD"
	SlotTaken     SlotStatus = "TAKEN"
)

type Slot struct {
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end"`
	Status   SlotStatus `json:"status"`
	CanStart bool       `json:"can_start"`
}

type CourtAvailability struct {
	Court Court  `json:"court"`
	Slots []Slot `json:"slots"`
}

type DayAvailability struct {
	Date        string              `json:"date"`
	Courts      []CourtAvailability `json:"courts"`
	MinDuration time.Duration       `json:"min_duration"`
	Step        time.Duration       `json:"step"`
}
