// Package sink contains the persistence collaborators for generated
// records: a CSV appender, a Postgres writer, an optional InfluxDB mirror
// and a dry-run variant. Sinks receive fully-formed records and own no
// generator state.
package sink

import (
	"context"

	"github.com/terminal-bench/trafficgen/internal/simulate"
)

// Sink persists one record per call. Implementations report failure through
// the returned error and never panic past this boundary; the run loop alone
// decides what a failure means.
type Sink interface {
	Name() string
	Write(ctx context.Context, rec simulate.Record) error
}
