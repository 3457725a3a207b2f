package issue

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NetworkDateRange is the service window spanned by one agency's trips.
type NetworkDateRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// FeedInfoSummary is the per-publisher slice of feed_info.txt metadata
// extracted into Metadata.FeedInfo.
type FeedInfoSummary struct {
	ContactEmail string `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`
	StartDate    string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Metadata is the feed-wide summary computed by the metadata extractor
// (spec §4.7), merged with the advanced fields populated once the linked
// model is available.
type Metadata struct {
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	StopsCount              int `json:"stops_count" yaml:"stops_count"`
	StopAreasCount          int `json:"stop_areas_count" yaml:"stop_areas_count"`
	StopPointsCount         int `json:"stop_points_count" yaml:"stop_points_count"`
	RouteCount              int `json:"route_count" yaml:"route_count"`
	TripCount               int `json:"trip_count" yaml:"trip_count"`
	TripsWithBikesInfoCount int `json:"trips_with_bikes_info_count" yaml:"trips_with_bikes_info_count"`
	TripsWithWheelchairInfoCount int `json:"trips_with_wheelchair_info_count" yaml:"trips_with_wheelchair_info_count"`
	TripsWithShapeCount     int `json:"trips_with_shape_count" yaml:"trips_with_shape_count"`
	TripsWithHeadsignCount  int `json:"trips_with_headsign_count" yaml:"trips_with_headsign_count"`
	RoutesWithCustomColorCount int `json:"routes_with_custom_color_count" yaml:"routes_with_custom_color_count"`
	RoutesWithShortNameCount   int `json:"routes_with_short_name_count" yaml:"routes_with_short_name_count"`
	RoutesWithLongNameCount    int `json:"routes_with_long_name_count" yaml:"routes_with_long_name_count"`
	FareAttributeCount int `json:"fare_attribute_count" yaml:"fare_attribute_count"`
	FareRuleCount      int `json:"fare_rule_count" yaml:"fare_rule_count"`
	TransferCount      int `json:"transfer_count" yaml:"transfer_count"`

	Networks []string `json:"networks" yaml:"networks"`
	Modes    []string `json:"modes" yaml:"modes"`

	FeedInfo map[string]FeedInfoSummary `json:"feed_info,omitempty" yaml:"feed_info,omitempty"`

	HasFares                  bool `json:"has_fares" yaml:"has_fares"`
	HasShapes                 bool `json:"has_shapes" yaml:"has_shapes"`
	HasPathways               bool `json:"has_pathways" yaml:"has_pathways"`
	SomeStopsNeedPhoneAgency  bool `json:"some_stops_need_phone_agency" yaml:"some_stops_need_phone_agency"`
	SomeStopsNeedPhoneDriver  bool `json:"some_stops_need_phone_driver" yaml:"some_stops_need_phone_driver"`

	ValidatorVersion string `json:"validator_version" yaml:"validator_version"`

	IssuesCount IssuesCountMap `json:"issues_count" yaml:"issues_count"`

	// Advanced fields, populated only after a successful linked-model build.
	StopsWithWheelchairInfoCount int                         `json:"stops_with_wheelchair_info_count" yaml:"stops_with_wheelchair_info_count"`
	NetworksStartEndDates        map[string]NetworkDateRange `json:"networks_start_end_dates,omitempty" yaml:"networks_start_end_dates,omitempty"`
}

func NewMetadata() *Metadata {
	return &Metadata{IssuesCount: make(IssuesCountMap)}
}

// IssuesCountMap is Metadata.IssuesCount's concrete type: a map keyed by
// issue type that always serializes in enum declaration order instead of
// the random order encoding/json would otherwise pick for a plain map.
type IssuesCountMap map[Type]int

func (m IssuesCountMap) MarshalJSON() ([]byte, error) {
	var keys []Type
	for _, t := range AllTypes() {
		if _, ok := m[t]; ok {
			keys = append(keys, t)
		}
	}
	return marshalOrderedObject(keys, func(t Type) (string, interface{}) {
		return t.String(), m[t]
	})
}

func (m *IssuesCountMap) UnmarshalJSON(data []byte) error {
	raw := make(map[string]int)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = make(IssuesCountMap, len(raw))
	for name, count := range raw {
		t, ok := TypeFromName(name)
		if !ok {
			return fmt.Errorf("unknown issue type %q", name)
		}
		(*m)[t] = count
	}
	return nil
}

func (m IssuesCountMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, t := range AllTypes() {
		count, ok := m[t]
		if !ok {
			continue
		}
		keyNode, valNode := &yaml.Node{}, &yaml.Node{}
		if err := keyNode.Encode(t.String()); err != nil {
			return nil, err
		}
		if err := valNode.Encode(count); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
