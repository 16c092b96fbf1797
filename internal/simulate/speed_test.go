package simulate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	t.Run("should stay within bounds for ordinary parameters", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			for i := 0; i < 100; i++ {
				v := SampleSpeed(rng, hour, 40, 5)
				assert.GreaterOrEqual(t, v, MinSpeed)
				assert.LessOrEqual(t, v, MaxSpeed)
			}
		}
	})

	t.Run("should clip extreme means instead of rejecting", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			assert.Equal(t, MaxSpeed, SampleSpeed(rng, 12, 10000, 1))
			assert.Equal(t, MinSpeed, SampleSpeed(rng, 12, -10000, 1))
		}
	})

	t.Run("should survive a huge standard deviation", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			v := SampleSpeed(rng, 3, 40, 1000)
			assert.GreaterOrEqual(t, v, MinSpeed)
			assert.LessOrEqual(t, v, MaxSpeed)
		}
	})
}
