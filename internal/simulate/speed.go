package simulate

import "math/rand"

// Speed bounds in mph.
const (
	MinSpeed = 0.0
	MaxSpeed = 120.0
)

// SampleSpeed draws a base speed from a normal distribution with the given
// mean and standard deviation, applies the hour's speed multiplier, and
// clips the result to [MinSpeed, MaxSpeed]. Out-of-range draws are clipped
// rather than rejected so the distribution keeps its tails.
func SampleSpeed(rng *rand.Rand, hour int, mean, stddev float64) float64 {
	speedMul, _ := Multipliers(rng, hour)
	v := (mean + rng.NormFloat64()*stddev) * speedMul
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}
