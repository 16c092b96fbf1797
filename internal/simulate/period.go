package simulate

import (
	"math/rand"
	"time"
)

// Period classifies an hour of the day by its traffic profile.
type Period int

const (
	RushHour Period = iota
	Business
	Evening
	Overnight
)

// String returns the period name.
func (p Period) String() string {
	switch p {
	case RushHour:
		return "rush_hour"
	case Business:
		return "business"
	case Evening:
		return "evening"
	case Overnight:
		return "overnight"
	default:
		return "unknown"
	}
}

// Classify maps an hour of day (0-23) to its period. Rush-hour windows are
// the half-open intervals [7,9), [11,13) and [16,18); business is [9,17)
// minus rush; evening is [18,22); everything else is overnight.
func Classify(hour int) Period {
	switch {
	case (hour >= 7 && hour < 9) || (hour >= 11 && hour < 13) || (hour >= 16 && hour < 18):
		return RushHour
	case hour >= 9 && hour < 17:
		return Business
	case hour >= 18 && hour < 22:
		return Evening
	default:
		return Overnight
	}
}

// HoursFor returns the hours of the day belonging to a period, in ascending
// order. The four periods partition the full 0-23 range.
func HoursFor(p Period) []int {
	var hours []int
	for h := 0; h < 24; h++ {
		if Classify(h) == p {
			hours = append(hours, h)
		}
	}
	return hours
}

// periodWeights drives the weighted period choice for synthetic timestamps.
// Congested periods dominate the synthetic day.
var periodWeights = []struct {
	period Period
	weight float64
}{
	{RushHour, 0.50},
	{Business, 0.30},
	{Evening, 0.15},
	{Overnight, 0.05},
}

// Clock synthesizes timestamps whose time-of-day is drawn from the weighted
// period distribution above.
type Clock struct {
	rng *rand.Rand
}

// NewClock returns a Clock using the given randomness source.
func NewClock(rng *rand.Rand) *Clock {
	return &Clock{rng: rng}
}

// Timestamp returns a synthetic instant within baseDay and its formatted
// rendering. A period is chosen by weight, then an hour uniformly from that
// period's hour set, then uniform minute, second and millisecond. A zero
// baseDay means the current day; only the time-of-day is synthesized.
func (c *Clock) Timestamp(baseDay time.Time) (time.Time, string) {
	hours := HoursFor(c.pickPeriod())
	hour := hours[c.rng.Intn(len(hours))]
	minute := c.rng.Intn(60)
	second := c.rng.Intn(60)
	milli := c.rng.Intn(1000)

	if baseDay.IsZero() {
		baseDay = time.Now().UTC()
	}
	ts := time.Date(baseDay.Year(), baseDay.Month(), baseDay.Day(),
		hour, minute, second, milli*int(time.Millisecond), time.UTC)
	return ts, FormatTimestamp(ts)
}

func (c *Clock) pickPeriod() Period {
	r := c.rng.Float64()
	acc := 0.0
	for _, pw := range periodWeights {
		acc += pw.weight
		if r < acc {
			return pw.period
		}
	}
	return periodWeights[len(periodWeights)-1].period
}

// FormatTimestamp renders t as HH:MM:SS.mmm: 24-hour, zero-padded,
// millisecond precision, no timezone suffix.
func FormatTimestamp(t time.Time) string {
	return t.Format("15:04:05.000")
}
