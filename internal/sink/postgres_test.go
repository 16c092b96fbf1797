package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	t.Run("should split a lat,long pair", func(t *testing.T) {
		lat, long, err := ParseCoordinates("32.8945,-96.57679")
		require.NoError(t, err)
		assert.InDelta(t, 32.8945, lat, 1e-9)
		assert.InDelta(t, -96.57679, long, 1e-9)
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		lat, long, err := ParseCoordinates(" 1.5 , -2.25 ")
		require.NoError(t, err)
		assert.InDelta(t, 1.5, lat, 1e-9)
		assert.InDelta(t, -2.25, long, 1e-9)
	})

	t.Run("should reject street names and malformed pairs", func(t *testing.T) {
		for _, loc := range []string{"Preston Rd", "1,2,3", "", "abc,def", "10,"} {
			_, _, err := ParseCoordinates(loc)
			assert.Error(t, err, "location %q", loc)
		}
	})
}

func TestPostgresWriteRejectsStreetLocations(t *testing.T) {
	// A street-bound record must fail at the parse step, before any
	// connection is attempted.
	p := NewPostgres(PostgresConfig{Host: "localhost", Port: 5432, Database: "traffic", SSLMode: "disable"})
	rec := testRecord()
	rec.Location = "Preston Rd"

	err := p.Write(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse location")
}
