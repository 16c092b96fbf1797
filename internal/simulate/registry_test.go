package simulate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreetRegistry(t *testing.T) {
	t.Run("should name sensors PMG with a zero-padded sequence", func(t *testing.T) {
		reg, err := NewStreetRegistry(rand.New(rand.NewSource(1)), 50, nil)
		require.NoError(t, err)
		assert.Equal(t, 50, reg.Size())

		loc, ok := reg.Location("PMG00001")
		assert.True(t, ok)
		assert.Contains(t, DefaultStreets, loc)

		_, ok = reg.Location("PMG00051")
		assert.False(t, ok)
	})

	t.Run("should keep sensor-to-location bindings stable", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		reg, err := NewStreetRegistry(rng, 200, nil)
		require.NoError(t, err)

		for i := 1; i <= 200; i++ {
			id := fmt.Sprintf("PMG%05d", i)
			first, ok := reg.Location(id)
			require.True(t, ok)
			again, _ := reg.Location(id)
			assert.Equal(t, first, again)
		}
	})

	t.Run("should reproduce assignments under the same seed", func(t *testing.T) {
		a, err := NewStreetRegistry(rand.New(rand.NewSource(9)), 100, nil)
		require.NoError(t, err)
		b, err := NewStreetRegistry(rand.New(rand.NewSource(9)), 100, nil)
		require.NoError(t, err)

		for i := 1; i <= 100; i++ {
			id := fmt.Sprintf("PMG%05d", i)
			la, _ := a.Location(id)
			lb, _ := b.Location(id)
			assert.Equal(t, la, lb)
		}
	})

	t.Run("should reject a non-positive population", func(t *testing.T) {
		_, err := NewStreetRegistry(rand.New(rand.NewSource(1)), 0, nil)
		assert.Error(t, err)
	})
}

func TestCoordinateRegistry(t *testing.T) {
	t.Run("should share one coordinate pair across the population", func(t *testing.T) {
		reg, err := NewCoordinateRegistry(25, 32.8945, -96.57679)
		require.NoError(t, err)

		for i := 1; i <= 25; i++ {
			loc, ok := reg.Location(fmt.Sprintf("PMG%05d", i))
			require.True(t, ok)
			assert.Equal(t, "32.8945,-96.57679", loc)
		}
	})
}

func TestFixedRegistry(t *testing.T) {
	t.Run("should hold exactly one configured sensor", func(t *testing.T) {
		reg, err := NewFixedRegistry("88", 32.8945, -96.57679)
		require.NoError(t, err)
		assert.Equal(t, 1, reg.Size())

		id, loc := reg.Pick(rand.New(rand.NewSource(1)))
		assert.Equal(t, "88", id)
		assert.Equal(t, "32.8945,-96.57679", loc)
	})

	t.Run("should reject an empty identifier", func(t *testing.T) {
		_, err := NewFixedRegistry("", 0, 0)
		assert.Error(t, err)
	})
}

func TestPickIsUniformlyFromPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	reg, err := NewStreetRegistry(rng, 10, nil)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id, loc := reg.Pick(rng)
		bound, ok := reg.Location(id)
		require.True(t, ok)
		assert.Equal(t, bound, loc)
		seen[id] = true
	}
	assert.Len(t, seen, 10, "every sensor should eventually be picked")
}
