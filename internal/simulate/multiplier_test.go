package simulate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultipliers(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	assertBand := func(t *testing.T, hour int, speedLo, speedHi, vehicleLo, vehicleHi float64) {
		t.Helper()
		for i := 0; i < 200; i++ {
			speedMul, vehicleMul := Multipliers(rng, hour)
			assert.GreaterOrEqual(t, speedMul, speedLo)
			assert.LessOrEqual(t, speedMul, speedHi)
			assert.GreaterOrEqual(t, vehicleMul, vehicleLo)
			assert.LessOrEqual(t, vehicleMul, vehicleHi)
		}
	}

	t.Run("rush hours slow traffic and add vehicles", func(t *testing.T) {
		for _, hour := range []int{7, 8, 11, 12, 16, 17} {
			assertBand(t, hour, 0.6, 0.8, 1.5, 2.0)
		}
	})

	t.Run("late night speeds up sparse traffic", func(t *testing.T) {
		for _, hour := range []int{23, 0, 1, 2, 3, 4} {
			assertBand(t, hour, 1.1, 1.2, 0.3, 0.5)
		}
	})

	t.Run("remaining hours vary mildly", func(t *testing.T) {
		for _, hour := range []int{5, 6, 9, 10, 13, 14, 15, 18, 19, 20, 21, 22} {
			assertBand(t, hour, 0.9, 1.1, 0.8, 1.2)
		}
	})
}
