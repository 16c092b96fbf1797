package simulate

import "math/rand"

// Multiplier bands per traffic regime. The exact bands and the
// rush/late-night/normal partition are part of the behavioral contract and
// must not drift.
const (
	rushSpeedLo, rushSpeedHi       = 0.6, 0.8
	rushVehicleLo, rushVehicleHi   = 1.5, 2.0
	nightSpeedLo, nightSpeedHi     = 1.1, 1.2
	nightVehicleLo, nightVehicleHi = 0.3, 0.5
	mildSpeedLo, mildSpeedHi       = 0.9, 1.1
	mildVehicleLo, mildVehicleHi   = 0.8, 1.2
)

// Multipliers returns the speed and vehicle-count adjustment factors for the
// given hour, uniformly sampled from the regime's band. Rush hours are
// slower and more congested; late night (23:00-04:59) is faster and
// sparser; the rest of the day varies mildly.
func Multipliers(rng *rand.Rand, hour int) (speedMul, vehicleMul float64) {
	switch {
	case Classify(hour) == RushHour:
		return uniform(rng, rushSpeedLo, rushSpeedHi), uniform(rng, rushVehicleLo, rushVehicleHi)
	case hour >= 23 || hour < 5:
		return uniform(rng, nightSpeedLo, nightSpeedHi), uniform(rng, nightVehicleLo, nightVehicleHi)
	default:
		return uniform(rng, mildSpeedLo, mildSpeedHi), uniform(rng, mildVehicleLo, mildVehicleHi)
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
