package simulate

import (
	"fmt"
	"math/rand"
	"strconv"
)

// DefaultPopulation is the sensor count used when none is configured.
const DefaultPopulation = 10000

// DefaultStreets is the candidate street list for the street location
// variant.
var DefaultStreets = []string{
	"Main St", "Elm Ave", "Broadway", "Preston Rd",
	"Belt Line Rd", "Central Expwy", "Coit Rd", "Plano Pkwy",
	"Legacy Dr", "Campbell Rd",
}

// Registry is the fixed sensor population. Each sensor identifier is bound
// to exactly one location at construction; the registry is read-only for
// the rest of the run.
type Registry struct {
	ids       []string
	locations map[string]string
}

// NewStreetRegistry builds a population of size sensors named PMG00001
// onward, each assigned a street by uniform choice over streets (or
// DefaultStreets when empty).
func NewStreetRegistry(rng *rand.Rand, size int, streets []string) (*Registry, error) {
	if size < 1 {
		return nil, fmt.Errorf("population size must be positive, got %d", size)
	}
	if len(streets) == 0 {
		streets = DefaultStreets
	}
	r := &Registry{
		ids:       make([]string, size),
		locations: make(map[string]string, size),
	}
	for i := 0; i < size; i++ {
		id := fmt.Sprintf("PMG%05d", i+1)
		r.ids[i] = id
		r.locations[id] = streets[rng.Intn(len(streets))]
	}
	return r, nil
}

// NewCoordinateRegistry builds a population of size sensors that all share
// one "lat,long" location.
func NewCoordinateRegistry(size int, lat, long float64) (*Registry, error) {
	if size < 1 {
		return nil, fmt.Errorf("population size must be positive, got %d", size)
	}
	loc := FormatCoordinates(lat, long)
	r := &Registry{
		ids:       make([]string, size),
		locations: make(map[string]string, size),
	}
	for i := 0; i < size; i++ {
		id := fmt.Sprintf("PMG%05d", i+1)
		r.ids[i] = id
		r.locations[id] = loc
	}
	return r, nil
}

// NewFixedRegistry builds a single-sensor population with a configured
// identifier bound to one shared "lat,long" location.
func NewFixedRegistry(id string, lat, long float64) (*Registry, error) {
	if id == "" {
		return nil, fmt.Errorf("sensor identifier must not be empty")
	}
	return &Registry{
		ids:       []string{id},
		locations: map[string]string{id: FormatCoordinates(lat, long)},
	}, nil
}

// Size returns the population size.
func (r *Registry) Size() int {
	return len(r.ids)
}

// Pick chooses one sensor uniformly at random and returns its identifier
// and bound location.
func (r *Registry) Pick(rng *rand.Rand) (id, location string) {
	id = r.ids[rng.Intn(len(r.ids))]
	return id, r.locations[id]
}

// Location returns the location bound to a sensor identifier.
func (r *Registry) Location(id string) (string, bool) {
	loc, ok := r.locations[id]
	return loc, ok
}

// FormatCoordinates renders a latitude/longitude pair as "lat,long".
func FormatCoordinates(lat, long float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(long, 'f', -1, 64)
}
