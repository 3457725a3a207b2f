package schema

// Trip represents a parsed row of trips.txt.
type Trip struct {
	ID                   string
	RouteID              string
	ServiceID            string
	Headsign             string
	ShortName            string
	DirectionID          string
	BlockID              string
	ShapeID              string
	WheelchairAccessible WheelchairBoarding
	BikesAllowed         BikesAllowed
}

func ParseTrip(values map[string]string, row int) (Trip, error) {
	return Trip{
		ID:                   values["trip_id"],
		RouteID:              values["route_id"],
		ServiceID:            values["service_id"],
		Headsign:             values["trip_headsign"],
		ShortName:            values["trip_short_name"],
		DirectionID:          values["direction_id"],
		BlockID:              values["block_id"],
		ShapeID:              values["shape_id"],
		WheelchairAccessible: ParseWheelchairBoarding(values["wheelchair_accessible"]),
		BikesAllowed:         ParseBikesAllowed(values["bikes_allowed"]),
	}, nil
}
