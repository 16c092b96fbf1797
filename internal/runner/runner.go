// Package runner drives the record generator and forwards every record to
// the configured sinks in a fixed order, strictly sequentially. It is the
// sole authority that turns a sink failure into the end of a run.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/terminal-bench/trafficgen/internal/simulate"
	"github.com/terminal-bench/trafficgen/internal/sink"
)

// Options selects a termination mode and pacing for one run. A positive
// Duration means duration mode; otherwise the run ends when the generator's
// own limit is exhausted. Cancellation of the context ends either mode.
type Options struct {
	// Duration stops the run once this much wall-clock time has elapsed.
	Duration time.Duration

	// Rate paces duration-mode runs in records per second; 0 means
	// unlimited. Ignored when Duration is zero (the generator paces
	// count-mode runs itself).
	Rate float64

	// Progress is the interval between progress log lines; 0 disables
	// them.
	Progress time.Duration
}

// Summary reports what a run accomplished.
type Summary struct {
	RunID      uuid.UUID
	Records    int
	Elapsed    time.Duration
	AvgLatency map[string]time.Duration
}

// Runner consumes a generator's sequence and writes each record through the
// sinks in order. A single goroutine owns the whole record lifecycle; the
// loop checks for cancellation once per iteration and never preempts an
// in-flight write.
type Runner struct {
	gen   *simulate.Generator
	sinks []sink.Sink
	log   *zap.Logger
}

// New returns a Runner writing to sinks in the given fixed order.
func New(gen *simulate.Generator, sinks []sink.Sink, log *zap.Logger) *Runner {
	return &Runner{gen: gen, sinks: sinks, log: log}
}

// Run executes the loop until the generator is exhausted, the duration
// expires, a sink fails, or ctx is cancelled. The returned error is nil for
// every clean termination and non-nil only for a sink failure.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	runID := uuid.New()
	log := r.log.With(zap.String("run_id", runID.String()))

	start := time.Now()
	var deadline time.Time
	if opts.Duration > 0 {
		deadline = start.Add(opts.Duration)
		log.Info("starting duration mode",
			zap.Duration("duration", opts.Duration),
			zap.Float64("rate", opts.Rate))
	}

	// Rate pacing belongs to duration mode only; count-mode runs are paced
	// by the generator itself.
	var interval time.Duration
	if opts.Duration > 0 && opts.Rate > 0 {
		interval = time.Duration(float64(time.Second) / opts.Rate)
	}
	nextTick := start
	nextLog := start.Add(opts.Progress)

	written := 0
	totalLatency := make(map[string]time.Duration, len(r.sinks))
	attempts := make(map[string]int, len(r.sinks))

	var failure error
	for failure == nil {
		if ctx.Err() != nil {
			log.Info("stop requested, exiting loop")
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			log.Info("reached duration limit")
			break
		}

		if interval > 0 {
			if wait := time.Until(nextTick); wait > 0 {
				select {
				case <-ctx.Done():
					continue
				case <-time.After(wait):
				}
			}
			nextTick = nextTick.Add(interval)
		}

		rec, ok := r.gen.Next(ctx)
		if !ok {
			break
		}

		for _, s := range r.sinks {
			wrote := time.Now()
			err := s.Write(ctx, rec)
			totalLatency[s.Name()] += time.Since(wrote)
			attempts[s.Name()]++
			if err != nil {
				log.Error("sink write failed, stopping run",
					zap.String("sink", s.Name()),
					zap.Error(err))
				failure = fmt.Errorf("%s sink: %w", s.Name(), err)
				break
			}
		}
		if failure != nil {
			break
		}
		written++

		if opts.Progress > 0 && !time.Now().Before(nextLog) {
			elapsed := time.Since(start)
			log.Info("progress",
				zap.Int("records", written),
				zap.Duration("elapsed", elapsed),
				zap.Float64("records_per_second", float64(written)/elapsed.Seconds()))
			nextLog = time.Now().Add(opts.Progress)
		}
	}

	summary := Summary{
		RunID:      runID,
		Records:    written,
		Elapsed:    time.Since(start),
		AvgLatency: make(map[string]time.Duration, len(attempts)),
	}
	for name, n := range attempts {
		if n > 0 {
			summary.AvgLatency[name] = totalLatency[name] / time.Duration(n)
		}
	}

	fields := []zap.Field{
		zap.Int("records", summary.Records),
		zap.Duration("elapsed", summary.Elapsed),
	}
	for name, avg := range summary.AvgLatency {
		fields = append(fields, zap.Duration("avg_"+name+"_latency", avg))
	}
	log.Info("run complete", fields...)

	return summary, failure
}
