// Package simulate implements the time-aware synthetic record generator:
// the period classifier, the congestion multiplier model, the speed
// sampler, the fixed sensor population and the burst-oriented generator
// that ties them together.
package simulate

import "time"

// Record is one simulated sensor reading. It is a value type and is never
// mutated after the generator emits it.
type Record struct {
	SensorID      string
	VehicleCount  int     // >= 1, time-adjusted
	PeakSpeed     float64 // mph, within [0, 120]
	Timestamp     time.Time
	TimestampText string // HH:MM:SS.mmm
	Location      string // street name or "lat,long"
}
