// Package customrules loads the per-mode speed overlay described in spec.md
// §3 and §4.9.
package customrules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules overrides the default maximum speed (km/h) per transit mode.
// Grounded on _examples/original_source/src/custom_rules.rs's CustomRules
// struct, translated from panicking Rust field accessors into an explicit
// lookup with defaults (spec §4.9 requires a returned error, not a panic,
// on a missing or malformed file).
type Rules struct {
	MaxTramwaySpeed  *float64 `yaml:"max_tramway_speed"`
	MaxSubwaySpeed   *float64 `yaml:"max_subway_speed"`
	MaxRailSpeed     *float64 `yaml:"max_rail_speed"`
	MaxBusSpeed      *float64 `yaml:"max_bus_speed"`
	MaxFerrySpeed    *float64 `yaml:"max_ferry_speed"`
	MaxCableCarSpeed *float64 `yaml:"max_cable_car_speed"`
	MaxGondolaSpeed  *float64 `yaml:"max_gondola_speed"`
	MaxFunicularSpeed *float64 `yaml:"max_funicular_speed"`
	MaxCoachSpeed    *float64 `yaml:"max_coach_speed"`
	MaxAirSpeed      *float64 `yaml:"max_air_speed"`
	MaxTaxiSpeed     *float64 `yaml:"max_taxi_speed"`
	MaxOtherSpeed    *float64 `yaml:"max_other_speed"`
}

// defaultSpeedsKmh are the fallback maximum speeds per mode (spec §3).
var defaultSpeedsKmh = map[string]float64{
	"tramway":   100,
	"subway":    140,
	"rail":      320,
	"bus":       120,
	"ferry":     90,
	"cable_car": 30,
	"gondola":   45,
	"funicular": 40,
	"coach":     120,
	"air":       1000,
	"taxi":      50,
	"other":     120,
}

// Default returns the speed overlay with every mode left at its default.
func Default() *Rules {
	return &Rules{}
}

// Load reads a YAML document at path. A missing file or malformed document
// is a fatal error to the caller (spec §4.9); an empty path means "use
// defaults" and is not itself an error.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading custom rules file %q: %w", path, err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing custom rules file %q: %w", path, err)
	}
	return &r, nil
}

// MaxSpeedKmh resolves the maximum speed, in km/h, for a mode name. Unknown
// mode names fall back to "other" (spec §4.5).
func (r *Rules) MaxSpeedKmh(mode string) float64 {
	def, ok := defaultSpeedsKmh[mode]
	if !ok {
		def = defaultSpeedsKmh["other"]
	}
	if r == nil {
		return def
	}
	var override *float64
	switch mode {
	case "tramway":
		override = r.MaxTramwaySpeed
	case "subway":
		override = r.MaxSubwaySpeed
	case "rail":
		override = r.MaxRailSpeed
	case "bus":
		override = r.MaxBusSpeed
	case "ferry":
		override = r.MaxFerrySpeed
	case "cable_car":
		override = r.MaxCableCarSpeed
	case "gondola":
		override = r.MaxGondolaSpeed
	case "funicular":
		override = r.MaxFunicularSpeed
	case "coach":
		override = r.MaxCoachSpeed
	case "air":
		override = r.MaxAirSpeed
	case "taxi":
		override = r.MaxTaxiSpeed
	default:
		override = r.MaxOtherSpeed
	}
	if override != nil {
		return *override
	}
	return def
}

// MaxSpeedMetersPerSecond converts the resolved km/h limit to m/s (÷3.6,
// spec §4.5).
func (r *Rules) MaxSpeedMetersPerSecond(mode string) float64 {
	return r.MaxSpeedKmh(mode) / 3.6
}
