// trafficgen synthesizes traffic-sensor telemetry and persists it to a CSV
// file and/or a relational store.
//
// Usage:
//
//	trafficgen [count]                  generate a fixed number of records
//	trafficgen --duration 120 --rate 50 generate for 120 seconds at 50 rec/s
//
// Configuration comes from the environment (optionally a .env file); see
// internal/config for the recognized variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/terminal-bench/trafficgen/internal/config"
	"github.com/terminal-bench/trafficgen/internal/runner"
	"github.com/terminal-bench/trafficgen/internal/simulate"
	"github.com/terminal-bench/trafficgen/internal/sink"
	"github.com/terminal-bench/trafficgen/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		duration float64
		rate     float64
		progress float64
	)

	cmd := &cobra.Command{
		Use:   "trafficgen [count]",
		Short: "Generate synthetic traffic-sensor telemetry",
		Long: "trafficgen emits fake traffic-sensor readings, modulated by " +
			"time-of-day congestion patterns, and writes them to a CSV file " +
			"and/or a Postgres table.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			durationMode := cmd.Flags().Changed("duration")
			if durationMode && len(args) == 1 {
				return errors.New("a record count and --duration are mutually exclusive")
			}
			if durationMode && duration <= 0 {
				return fmt.Errorf("--duration must be positive, got %v", duration)
			}
			if rate < 0 {
				return fmt.Errorf("--rate must not be negative, got %v", rate)
			}
			if progress < 0 {
				return fmt.Errorf("--progress must not be negative, got %v", progress)
			}

			count := cfg.NumRecords
			if len(args) == 1 {
				count, err = strconv.Atoi(args[0])
				if err != nil || count < 1 {
					return fmt.Errorf("invalid record count %q", args[0])
				}
			}

			opts := runner.Options{
				Progress: time.Duration(progress * float64(time.Second)),
			}
			if durationMode {
				opts.Duration = time.Duration(duration * float64(time.Second))
				opts.Rate = rate
				count = 0 // unbounded; the duration decides
			}
			return run(cfg, count, opts)
		},
	}

	cmd.Flags().Float64Var(&duration, "duration", 0,
		"run for a fixed number of seconds instead of a fixed record count")
	cmd.Flags().Float64Var(&rate, "rate", 0,
		"target records per second in duration mode (0 = unlimited)")
	cmd.Flags().Float64Var(&progress, "progress", 5,
		"seconds between progress reports (0 disables them)")
	return cmd
}

func run(cfg config.Config, limit int, opts runner.Options) error {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	registry, err := buildRegistry(cfg, rng)
	if err != nil {
		return err
	}

	genOpts := simulate.Options{
		Registry:         registry,
		PeakSpeedMean:    cfg.PeakSpeedMean,
		PeakSpeedStd:     cfg.PeakSpeedStd,
		Limit:            limit,
		RecordsPerSecond: cfg.RecordsPerSecond,
	}
	if cfg.SensorID != "" {
		// The single-sensor variant reports a configured base count
		// instead of sampling one.
		genOpts.BaseVehicleCount = cfg.VehicleCount
	}
	if opts.Duration > 0 {
		// Duration mode paces in the run loop via --rate instead.
		genOpts.RecordsPerSecond = 0
	}
	gen, err := simulate.NewGenerator(rng, genOpts)
	if err != nil {
		return err
	}

	sinks, closeSinks := buildSinks(cfg, log)
	defer closeSinks()

	log.Info("starting generation",
		zap.Int64("seed", seed),
		zap.Int("sensors", registry.Size()),
		zap.Int("limit", limit),
		zap.Bool("csv", cfg.CSVWrite),
		zap.Bool("db", cfg.DBWrite),
		zap.Bool("influx", cfg.InfluxWrite))

	_, err = runner.New(gen, sinks, log).Run(ctx, opts)
	return err
}

func buildRegistry(cfg config.Config, rng *rand.Rand) (*simulate.Registry, error) {
	if cfg.SensorID != "" {
		return simulate.NewFixedRegistry(cfg.SensorID, cfg.LocationLat, cfg.LocationLong)
	}
	if cfg.LocationMode == config.LocationCoordinate {
		return simulate.NewCoordinateRegistry(cfg.SensorCount, cfg.LocationLat, cfg.LocationLong)
	}
	return simulate.NewStreetRegistry(rng, cfg.SensorCount, nil)
}

// buildSinks assembles the sink chain in its fixed write order: CSV first,
// then the relational store, then the optional time-series mirror. Disabled
// sinks become dry-run variants.
func buildSinks(cfg config.Config, log *zap.Logger) ([]sink.Sink, func()) {
	closeSinks := func() {}

	var sinks []sink.Sink
	if cfg.CSVWrite {
		sinks = append(sinks, sink.NewCSV(cfg.CSVPath))
	} else {
		sinks = append(sinks, sink.NewNoop("csv", log))
	}

	if cfg.DBWrite {
		sinks = append(sinks, sink.NewPostgres(sink.PostgresConfig{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Database: cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		}))
	} else {
		sinks = append(sinks, sink.NewNoop("postgres", log))
	}

	if cfg.InfluxWrite {
		influx := sink.NewInflux(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
		sinks = append(sinks, influx)
		closeSinks = influx.Close
	}

	return sinks, closeSinks
}
