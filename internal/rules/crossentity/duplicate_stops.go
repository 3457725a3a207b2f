package crossentity

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/geo"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

// duplicateStopThresholds is the max distance, in metres, for two
// same-name stops of a given location type to be flagged as duplicates
// (spec §4.4).
var duplicateStopThresholds = map[schema.LocationType]float64{
	schema.LocationStopPoint: 2,
	schema.LocationStopArea:  100,
}

// DuplicateStops emits DuplicateStops for same-name, same-location-type
// stop pairs (excluding StationEntrance) closer than the per-type
// threshold (spec §4.4).
func DuplicateStops(m *model.Model) []issue.Issue {
	type group struct {
		name string
		lt   schema.LocationType
	}
	groups := make(map[group][]*model.Stop)
	for _, id := range sortedStopIDs(m) {
		s := m.Stops[id]
		if s.LocationType == schema.LocationEntrance || s.Name == "" || !s.HasCoordinates {
			continue
		}
		if _, ok := duplicateStopThresholds[s.LocationType]; !ok {
			continue
		}
		g := group{name: s.Name, lt: s.LocationType}
		groups[g] = append(groups[g], s)
	}

	var groupKeys []group
	for g := range groups {
		groupKeys = append(groupKeys, g)
	}
	sort.Slice(groupKeys, func(i, j int) bool {
		if groupKeys[i].name != groupKeys[j].name {
			return groupKeys[i].name < groupKeys[j].name
		}
		return groupKeys[i].lt < groupKeys[j].lt
	})

	var issues []issue.Issue
	for _, g := range groupKeys {
		stops := groups[g]
		threshold := duplicateStopThresholds[g.lt]
		for i := 0; i < len(stops); i++ {
			for j := i + 1; j < len(stops); j++ {
				a, b := stops[i], stops[j]
				if !b.HasCoordinates || !a.HasCoordinates {
					continue
				}
				d := geo.HaversineMeters(a.Lat, a.Lon, b.Lat, b.Lon)
				if d < threshold {
					issues = append(issues, *issue.NewWithObject(issue.Information, issue.DuplicateStops, a.ID, issue.ObjectStop, a.Name).
						WithDetails("stop is within "+formatMeters(d)+" of a same-named stop").
						AddRelatedObject(issue.RelatedObjectRef(b.ID, issue.ObjectStop, b.Name)))
				}
			}
		}
	}
	return issues
}
