package sink

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/terminal-bench/trafficgen/internal/simulate"
)

// createdAtLayout is UTC ISO-8601 with a trailing Z, used for the sink's
// own write time.
const createdAtLayout = "2006-01-02T15:04:05.000000Z"

// csvHeader is the fixed column order of the output file.
var csvHeader = []string{"sensor_id", "vehicle_count", "speed", "timestamp", "location", "created_at"}

// CSV appends records to a single file for local inspection. The first
// write on a path that does not yet exist creates the parent directories
// and the header row; subsequent writes only append.
type CSV struct {
	path string
	now  func() time.Time
}

// NewCSV returns a CSV sink appending to path.
func NewCSV(path string) *CSV {
	return &CSV{path: path, now: time.Now}
}

// Name identifies the sink in logs and latency stats.
func (c *CSV) Name() string {
	return "csv"
}

// Write appends one row, creating the file, its parent directories and the
// header if needed. Any I/O failure is returned as an error.
func (c *CSV) Write(_ context.Context, rec simulate.Record) error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create csv directory: %w", err)
		}
	}

	_, statErr := os.Stat(c.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}

	row := []string{
		rec.SensorID,
		strconv.Itoa(rec.VehicleCount),
		strconv.FormatFloat(rec.PeakSpeed, 'f', 2, 64),
		rec.TimestampText,
		rec.Location,
		c.now().UTC().Format(createdAtLayout),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
