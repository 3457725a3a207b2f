package schema

import "fmt"

// Route represents a parsed row of routes.txt.
type Route struct {
	ID             string
	AgencyID       string
	ShortName      string
	LongName       string
	Desc           string
	Type           RouteType
	URL            string
	Color          string
	TextColor      string
}

func ParseRoute(values map[string]string, row int) (Route, error) {
	rt := ParseRouteType(values["route_type"])
	if !rt.Known && rt.Code == -1 && values["route_type"] != "" {
		return Route{}, fmt.Errorf("row %d: invalid route_type %q", row, values["route_type"])
	}
	return Route{
		ID:        values["route_id"],
		AgencyID:  values["agency_id"],
		ShortName: values["route_short_name"],
		LongName:  values["route_long_name"],
		Desc:      values["route_desc"],
		Type:      rt,
		URL:       values["route_url"],
		Color:     values["route_color"],
		TextColor: values["route_text_color"],
	}, nil
}
