package roadmap

import "errors"

// Sentinel errors for road-table construction and lookup.
var (
	// ErrInvalidConfig indicates the configuration failed schema validation.
	ErrInvalidConfig = errors.New("roadmap: invalid configuration")

	// ErrDuplicateCity indicates two cities share one name.
	ErrDuplicateCity = errors.New("roadmap: duplicate city name")

	// ErrUnknownCity indicates a road, target or lookup named a city that
	// is not in the table.
	ErrUnknownCity = errors.New("roadmap: unknown city")

	// ErrLoop indicates a road from a city to itself.
	ErrLoop = errors.New("roadmap: road from a city to itself")

	// ErrInadmissible indicates a heuristic value larger than the exact
	// distance to the target.
	ErrInadmissible = errors.New("roadmap: heuristic overestimates distance to target")
)

// Config is the serialized form of a road table.
//
// Target names the city the heuristic values estimate distance to. Roads are
// directed; list both directions for two-way roads. A later road between the
// same pair of cities replaces an earlier one.
type Config struct {
	Target string       `yaml:"target" validate:"required"`
	Cities []CityConfig `yaml:"cities" validate:"required,min=1,dive"`
	Roads  []RoadConfig `yaml:"roads" validate:"dive"`
}

// CityConfig declares one city and its heuristic distance to Config.Target.
type CityConfig struct {
	Name      string  `yaml:"name" validate:"required"`
	Heuristic float64 `yaml:"heuristic" validate:"gte=0"`
}

// RoadConfig declares one directed road.
type RoadConfig struct {
	From     string  `yaml:"from" validate:"required"`
	To       string  `yaml:"to" validate:"required"`
	Distance float64 `yaml:"distance" validate:"gte=0"`
}
