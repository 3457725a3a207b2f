package schema

// FareRule represents a parsed row of fare_rules.txt.
type FareRule struct {
	FareID    string
	RouteID   string
	OriginID  string
	DestID    string
	ContainsID string
}

func ParseFareRule(values map[string]string, row int) (FareRule, error) {
	return FareRule{
		FareID:     values["fare_id"],
		RouteID:    values["route_id"],
		OriginID:   values["origin_id"],
		DestID:     values["destination_id"],
		ContainsID: values["contains_id"],
	}, nil
}
