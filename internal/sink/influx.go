package sink

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/terminal-bench/trafficgen/internal/simulate"
)

// Influx mirrors each record into a time-series bucket as one point of the
// sensor_readings measurement. Writes are blocking so a failure is known
// before the next record is generated.
type Influx struct {
	client influxdb2.Client
	write  api.WriteAPIBlocking
}

// NewInflux returns an Influx sink writing to the given org and bucket.
func NewInflux(url, token, org, bucket string) *Influx {
	client := influxdb2.NewClient(url, token)
	return &Influx{
		client: client,
		write:  client.WriteAPIBlocking(org, bucket),
	}
}

// Name identifies the sink in logs and latency stats.
func (i *Influx) Name() string {
	return "influx"
}

// Write sends one point, using the record's synthetic instant as the point
// time.
func (i *Influx) Write(ctx context.Context, rec simulate.Record) error {
	point := influxdb2.NewPoint("sensor_readings",
		map[string]string{
			"sensor_id": rec.SensorID,
			"location":  rec.Location,
		},
		map[string]interface{}{
			"vehicle_count": rec.VehicleCount,
			"speed":         rec.PeakSpeed,
		},
		rec.Timestamp,
	)
	if err := i.write.WritePoint(ctx, point); err != nil {
		return fmt.Errorf("write influx point: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (i *Influx) Close() {
	i.client.Close()
}
