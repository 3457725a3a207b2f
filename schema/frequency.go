package schema

import "fmt"

// Frequency represents a parsed row of frequencies.txt.
type Frequency struct {
	TripID      string
	HeadwaySecs int
}

func ParseFrequency(values map[string]string, row int) (Frequency, error) {
	var headway int
	if h := values["headway_secs"]; h != "" {
		_, err := fmt.Sscanf(h, "%d", &headway)
		if err != nil {
			return Frequency{}, fmt.Errorf("row %d: invalid headway_secs %q", row, h)
		}
	}
	return Frequency{TripID: values["trip_id"], HeadwaySecs: headway}, nil
}
