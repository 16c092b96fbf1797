package simulate

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Burst size bounds: each generation cycle emits between 2 and 5 readings
// for one sensor.
const (
	minBurst = 2
	maxBurst = 5
)

// maxJitterMillis bounds the per-step timestamp jitter inside a burst.
const maxJitterMillis = 500

// Options configures a Generator.
type Options struct {
	Registry *Registry

	// RecordsPerSecond paces emission; 0 disables pacing entirely.
	RecordsPerSecond float64

	// Limit caps the number of emitted records; <= 0 means unbounded.
	// A limit reached mid-burst truncates the burst.
	Limit int

	PeakSpeedMean float64
	PeakSpeedStd  float64

	// BaseVehicleCount, when positive, replaces the uniform {1..5} base
	// draw with a configured constant. Used by the single-sensor variant;
	// the time-of-day vehicle multiplier still applies.
	BaseVehicleCount int

	// BaseDay supplies the date component of synthetic timestamps.
	// Zero means the current day.
	BaseDay time.Time
}

// Generator produces a lazy sequence of Records in per-sensor bursts.
// Internal counters are never reset; restarting means constructing a new
// instance. A Generator is owned by a single goroutine.
type Generator struct {
	opts    Options
	rng     *rand.Rand
	clock   *Clock
	emitted int
	pending []Record
}

// NewGenerator returns a Generator drawing all randomness from rng.
func NewGenerator(rng *rand.Rand, opts Options) (*Generator, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("generator requires a sensor registry")
	}
	if opts.RecordsPerSecond < 0 {
		return nil, fmt.Errorf("records per second must not be negative, got %v", opts.RecordsPerSecond)
	}
	return &Generator{
		opts:  opts,
		rng:   rng,
		clock: NewClock(rng),
	}, nil
}

// Emitted returns how many records the generator has produced so far.
func (g *Generator) Emitted() int {
	return g.emitted
}

// Next returns the next record of the sequence, pausing for the pacing
// interval between emissions. ok is false once the limit is reached or ctx
// is cancelled; the generator stays exhausted after that.
func (g *Generator) Next(ctx context.Context) (rec Record, ok bool) {
	if g.opts.Limit > 0 && g.emitted >= g.opts.Limit {
		return Record{}, false
	}
	if g.emitted > 0 && !g.pause(ctx) {
		return Record{}, false
	}
	if ctx.Err() != nil {
		return Record{}, false
	}

	if len(g.pending) == 0 {
		g.fillBurst()
	}
	rec = g.pending[0]
	g.pending = g.pending[1:]
	g.emitted++
	return rec, true
}

// fillBurst generates one burst: a uniformly chosen sensor, a burst size in
// {2..5}, one base synthetic timestamp, and a jitter step drawn once from
// uniform(0,500)ms.
func (g *Generator) fillBurst() {
	id, location := g.opts.Registry.Pick(g.rng)
	size := minBurst + g.rng.Intn(maxBurst-minBurst+1)
	base, _ := g.clock.Timestamp(g.opts.BaseDay)
	step := time.Duration(g.rng.Float64() * maxJitterMillis * float64(time.Millisecond))

	g.pending = append(g.pending, g.burstRecords(id, location, base, size, step)...)
}

// burstRecords builds one burst's records. Record j sits at j x step past
// the base timestamp; drawing the step once per burst keeps the offsets
// monotone, so timestamps within a burst never decrease. A base timestamp
// late in the day may roll past midnight into the next day; the instants
// stay ordered and the formatted text shows the wrapped time-of-day.
func (g *Generator) burstRecords(id, location string, base time.Time, size int, step time.Duration) []Record {
	records := make([]Record, 0, size)
	for j := 0; j < size; j++ {
		ts := base.Add(time.Duration(j) * step)
		hour := ts.Hour()

		baseCount := g.opts.BaseVehicleCount
		if baseCount <= 0 {
			baseCount = 1 + g.rng.Intn(5)
		}
		_, vehicleMul := Multipliers(g.rng, hour)
		count := int(math.Round(float64(baseCount) * vehicleMul))
		if count < 1 {
			count = 1
		}

		speed := math.Round(SampleSpeed(g.rng, hour, g.opts.PeakSpeedMean, g.opts.PeakSpeedStd)*100) / 100

		records = append(records, Record{
			SensorID:      id,
			VehicleCount:  count,
			PeakSpeed:     speed,
			Timestamp:     ts,
			TimestampText: FormatTimestamp(ts),
			Location:      location,
		})
	}
	return records
}

// pause sleeps the inter-record pacing interval, returning false when the
// context is cancelled first.
func (g *Generator) pause(ctx context.Context) bool {
	if g.opts.RecordsPerSecond <= 0 {
		return true
	}
	interval := time.Duration(float64(time.Second) / g.opts.RecordsPerSecond)
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
