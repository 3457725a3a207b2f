package schema

import (
	"fmt"
	"strconv"
)

// Stop represents a parsed row of stops.txt.
type Stop struct {
	ID                 string
	Code               string
	Name               string
	Desc               string
	Lat, Lon           float64
	HasCoordinates     bool // false when either field was blank or unparseable
	LocationType       LocationType
	ParentStation      string
	Timezone           string
	LevelID            string
	URL                string
	WheelchairBoarding WheelchairBoarding
	PlatformCode       string
	ZoneID             string
}

// ParseStop builds a Stop from a CSV row. A malformed (non-blank,
// non-numeric) coordinate is reported as a parse error; a blank
// coordinate is not an error, it is simply absent.
func ParseStop(values map[string]string, row int) (Stop, error) {
	s := Stop{
		ID:            values["stop_id"],
		Code:          values["stop_code"],
		Name:          values["stop_name"],
		Desc:          values["stop_desc"],
		LocationType:  ParseLocationType(values["location_type"]),
		ParentStation: values["parent_station"],
		Timezone:      values["stop_timezone"],
		LevelID:       values["level_id"],
		URL:           values["stop_url"],
		WheelchairBoarding: ParseWheelchairBoarding(values["wheelchair_boarding"]),
		PlatformCode:       values["platform_code"],
		ZoneID:             values["zone_id"],
	}

	latStr, lonStr := values["stop_lat"], values["stop_lon"]
	var lat, lon float64
	var err error
	if latStr != "" {
		if lat, err = strconv.ParseFloat(latStr, 64); err != nil {
			return s, fmt.Errorf("row %d: invalid stop_lat %q", row, latStr)
		}
	}
	if lonStr != "" {
		if lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
			return s, fmt.Errorf("row %d: invalid stop_lon %q", row, lonStr)
		}
	}
	if latStr != "" && lonStr != "" {
		s.Lat, s.Lon, s.HasCoordinates = lat, lon, true
	}
	return s, nil
}
