// Package config reads every recognized environment variable into one
// explicit structure, applies defaults, and validates the result once at
// startup. No other component reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Location modes for the sensor registry.
const (
	LocationStreet     = "street"
	LocationCoordinate = "coordinate"
)

// Config holds every recognized option with its resolved value.
type Config struct {
	CSVWrite bool
	CSVPath  string

	DBWrite    bool
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	InfluxWrite  bool
	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string

	RecordsPerSecond float64
	NumRecords       int
	SensorCount      int
	SensorID         string // non-empty selects the single-sensor variant
	VehicleCount     int    // base vehicle count for the single-sensor variant
	LocationMode     string
	LocationLat      float64
	LocationLong     float64
	PeakSpeedMean    float64
	PeakSpeedStd     float64
	Seed             int64 // 0 seeds from the wall clock
	LogLevel         string
}

// Load reads an optional .env file, then the environment, and returns the
// validated configuration. Malformed or invalid values are a startup error.
func Load() (Config, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := Config{}
	var err error

	if cfg.CSVWrite, err = envBool("CSV_WRITE", true); err != nil {
		return cfg, err
	}
	cfg.CSVPath = envString("CSV_PATH", "data/sensor_readings.csv")

	if cfg.DBWrite, err = envBool("DB_WRITE", false); err != nil {
		return cfg, err
	}
	cfg.DBHost = envString("DB_HOST", "localhost")
	if cfg.DBPort, err = envInt("DB_PORT", 5432); err != nil {
		return cfg, err
	}
	cfg.DBUser = envString("DB_USER", "")
	cfg.DBPassword = envString("DB_PASSWORD", "")
	cfg.DBName = envString("DB_NAME", "traffic")
	cfg.DBSSLMode = envString("DB_SSLMODE", "disable")

	if cfg.InfluxWrite, err = envBool("INFLUX_WRITE", false); err != nil {
		return cfg, err
	}
	cfg.InfluxURL = envString("INFLUX_URL", "http://localhost:8086")
	cfg.InfluxToken = envString("INFLUX_TOKEN", "")
	cfg.InfluxOrg = envString("INFLUX_ORG", "traffic")
	cfg.InfluxBucket = envString("INFLUX_BUCKET", "sensor_readings")

	if cfg.RecordsPerSecond, err = envFloat("RECORDS_PER_SECOND", 10); err != nil {
		return cfg, err
	}
	if cfg.NumRecords, err = envInt("NUM_RECORDS", 100); err != nil {
		return cfg, err
	}
	if cfg.SensorCount, err = envInt("SENSOR_COUNT", 10000); err != nil {
		return cfg, err
	}
	cfg.SensorID = envString("SENSOR_ID", "")
	if cfg.VehicleCount, err = envInt("VEHICLE_COUNT", 1); err != nil {
		return cfg, err
	}
	cfg.LocationMode = envString("LOCATION_MODE", LocationStreet)
	if cfg.LocationLat, err = envFloat("LOCATION_LAT", 32.8945); err != nil {
		return cfg, err
	}
	if cfg.LocationLong, err = envFloat("LOCATION_LONG", -96.57679); err != nil {
		return cfg, err
	}
	if cfg.PeakSpeedMean, err = envFloat("PEAKSPEED_MEAN", 40); err != nil {
		return cfg, err
	}
	if cfg.PeakSpeedStd, err = envFloat("PEAKSPEED_STD", 5); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = envInt64("SEED", 0); err != nil {
		return cfg, err
	}
	cfg.LogLevel = envString("LOG_LEVEL", "info")

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints once at startup.
func (c Config) Validate() error {
	if c.CSVWrite && c.CSVPath == "" {
		return fmt.Errorf("CSV_PATH must not be empty when CSV_WRITE is enabled")
	}
	if c.DBPort < 1 || c.DBPort > 65535 {
		return fmt.Errorf("DB_PORT must be in 1..65535, got %d", c.DBPort)
	}
	if c.RecordsPerSecond < 0 {
		return fmt.Errorf("RECORDS_PER_SECOND must not be negative, got %v", c.RecordsPerSecond)
	}
	if c.SensorCount < 1 {
		return fmt.Errorf("SENSOR_COUNT must be positive, got %d", c.SensorCount)
	}
	if c.VehicleCount < 1 {
		return fmt.Errorf("VEHICLE_COUNT must be at least 1, got %d", c.VehicleCount)
	}
	if c.LocationMode != LocationStreet && c.LocationMode != LocationCoordinate {
		return fmt.Errorf("LOCATION_MODE must be %q or %q, got %q",
			LocationStreet, LocationCoordinate, c.LocationMode)
	}
	if c.PeakSpeedStd < 0 {
		return fmt.Errorf("PEAKSPEED_STD must not be negative, got %v", c.PeakSpeedStd)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return f, nil
}
