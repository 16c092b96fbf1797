package sink

import (
	"context"

	"go.uber.org/zap"

	"github.com/terminal-bench/trafficgen/internal/simulate"
)

// Noop is the dry-run variant of a sink: it logs the would-be write and
// reports success without performing any I/O. It is selected at
// construction time when the corresponding feature is disabled.
type Noop struct {
	name string
	log  *zap.Logger
}

// NewNoop returns a dry-run sink carrying the disabled sink's name.
func NewNoop(name string, log *zap.Logger) *Noop {
	return &Noop{name: name, log: log}
}

// Name returns the name of the sink this stands in for.
func (n *Noop) Name() string {
	return n.name
}

// Write logs the record and succeeds.
func (n *Noop) Write(_ context.Context, rec simulate.Record) error {
	n.log.Debug("dry-run: would write record",
		zap.String("sink", n.name),
		zap.String("sensor_id", rec.SensorID),
		zap.Int("vehicle_count", rec.VehicleCount),
		zap.Float64("speed", rec.PeakSpeed),
		zap.String("timestamp", rec.TimestampText),
		zap.String("location", rec.Location),
	)
	return nil
}
