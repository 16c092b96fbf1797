package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"

	"github.com/terminal-bench/trafficgen/internal/simulate"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS sensor_readings (
	id BIGSERIAL PRIMARY KEY,
	sensor_id VARCHAR(32),
	vehicle_count INTEGER,
	speed DOUBLE PRECISION,
	timestamp VARCHAR(64),
	location POINT,
	created_at TIMESTAMPTZ DEFAULT now()
)`

const insertSQL = `
INSERT INTO sensor_readings (sensor_id, vehicle_count, speed, timestamp, location)
VALUES ($1, $2, $3, $4, point($5, $6))`

// PostgresConfig holds the connection parameters for the store sink.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// Postgres writes each record as one row of the sensor_readings table. The
// connection lifecycle is per call: open, ensure the table, insert, close.
// No pooling and no transaction spans more than one record.
type Postgres struct {
	dsn string
}

// NewPostgres returns a Postgres sink for the given connection parameters.
func NewPostgres(cfg PostgresConfig) *Postgres {
	parts := []string{
		"host=" + cfg.Host,
		"port=" + strconv.Itoa(cfg.Port),
		"dbname=" + cfg.Database,
		"sslmode=" + cfg.SSLMode,
	}
	if cfg.User != "" {
		parts = append(parts, "user="+cfg.User)
	}
	if cfg.Password != "" {
		parts = append(parts, "password="+cfg.Password)
	}
	return &Postgres{dsn: strings.Join(parts, " ")}
}

// Name identifies the sink in logs and latency stats.
func (p *Postgres) Name() string {
	return "postgres"
}

// Write inserts one row. The record's location must be a "lat,long" pair; a
// street-name location surfaces as a write failure for that record.
func (p *Postgres) Write(ctx context.Context, rec simulate.Record) error {
	lat, long, err := ParseCoordinates(rec.Location)
	if err != nil {
		return fmt.Errorf("parse location: %w", err)
	}

	db, err := sql.Open("postgres", p.dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("ensure sensor_readings table: %w", err)
	}
	if _, err := db.ExecContext(ctx, insertSQL,
		rec.SensorID, rec.VehicleCount, rec.PeakSpeed, rec.TimestampText, lat, long); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// ParseCoordinates splits a "lat,long" location string into its numeric
// parts.
func ParseCoordinates(location string) (lat, long float64, err error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("location %q is not a lat,long pair", location)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in %q: %w", location, err)
	}
	long, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in %q: %w", location, err)
	}
	return lat, long, nil
}
