package pricing

import (
	"math"
	"time"
)

type Tariff struct {
	DayRate     float64
	EveningRate float64
	SwitchHour  int
	Zone        *time.Location
}

func (t Tariff) RateAt(at time.Time) float64 {
	if at.In(t.Zone).Hour() >= t.SwitchHour {
		return t.EveningRate
	}
	return t.DayRate
}

// Amount считает поминутно, на стыке тарифов цена смешанная. Округление до сотых.
func (t Tariff) Amount(start, end time.Time) float64 {
	if !end.After(start) {
		return 0
	}

	const msPerHour = int64(time.Hour / time.Millisecond)

	// копим cents*ms, чтобы не терять точность на float
	var acc int64
	for at := start; at.Before(end); {
		next := at.Truncate(time.Minute).Add(time.Minute)
		if next.After(end) {
			next = end
		}
		rate := int64(math.Round(t.RateAt(at) * 100))
		acc += rate * next.Sub(at).Milliseconds()
		at = next
	}

	cents := (acc + msPerHour/2) / msPerHour
	return float64(cents) / 100
}
