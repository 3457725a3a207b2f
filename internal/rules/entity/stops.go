package entity

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

// coordinatesOptional are the stop location types allowed to have no
// coordinates at all (spec §4.3).
var coordinatesOptional = map[schema.LocationType]bool{
	schema.LocationGenericNode:    true,
	schema.LocationBoardingArea:   true,
}

// Stops emits MissingCoordinates/InvalidCoordinates and the parent-station
// topology checks for every stops.txt row (spec §4.3).
func Stops(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, id := range sortedStopIDs(m) {
		s := m.Stops[id]
		issues = append(issues, checkCoordinates(s)...)
		issues = append(issues, checkParentTopology(s)...)
	}
	return issues
}

func checkCoordinates(s *model.Stop) []issue.Issue {
	if coordinatesOptional[s.LocationType] {
		return nil
	}
	if s.Lat == 0 || s.Lon == 0 {
		var missing string
		switch {
		case s.Lat == 0 && s.Lon == 0:
			missing = "both latitude and longitude are missing"
		case s.Lat == 0:
			missing = "latitude is missing"
		default:
			missing = "longitude is missing"
		}
		return []issue.Issue{
			*issue.NewWithObject(issue.Warning, issue.MissingCoordinates, s.ID, issue.ObjectStop, s.Name).
				WithDetails(missing),
		}
	}
	if s.Lon < -180 || s.Lon > 180 || s.Lat < -90 || s.Lat > 90 {
		return []issue.Issue{
			*issue.NewWithObject(issue.Error, issue.InvalidCoordinates, s.ID, issue.ObjectStop, s.Name).
				WithDetails("stop coordinates out of range"),
		}
	}
	return nil
}

func checkParentTopology(s *model.Stop) []issue.Issue {
	switch s.LocationType {
	case schema.LocationStopArea:
		if s.Stop.ParentStation != "" {
			iss := issue.NewWithObject(issue.Warning, issue.InvalidStopParent, s.ID, issue.ObjectStop, s.Name).
				WithDetails("a stop area must not have a parent station")
			return []issue.Issue{*iss}
		}
	case schema.LocationStopPoint:
		if s.ParentStation != nil && s.ParentStation.LocationType != schema.LocationStopArea {
			iss := issue.NewWithObject(issue.Warning, issue.InvalidStopParent, s.ID, issue.ObjectStop, s.Name).
				WithDetails("parent station must be a stop area").
				AddRelatedObject(issue.RelatedObjectRef(s.ParentStation.ID, issue.ObjectStop, s.ParentStation.Name))
			return []issue.Issue{*iss}
		}
	case schema.LocationGenericNode, schema.LocationEntrance:
		if s.Stop.ParentStation == "" {
			iss := issue.NewWithObject(issue.Warning, issue.InvalidStopParent, s.ID, issue.ObjectStop, s.Name).
				WithDetails("parent station is mandatory for this location type")
			return []issue.Issue{*iss}
		}
		if s.ParentStation != nil && s.ParentStation.LocationType != schema.LocationStopArea {
			iss := issue.NewWithObject(issue.Warning, issue.InvalidStopParent, s.ID, issue.ObjectStop, s.Name).
				WithDetails("parent station must be a stop area").
				AddRelatedObject(issue.RelatedObjectRef(s.ParentStation.ID, issue.ObjectStop, s.ParentStation.Name))
			return []issue.Issue{*iss}
		}
	case schema.LocationBoardingArea:
		if s.Stop.ParentStation == "" {
			iss := issue.NewWithObject(issue.Warning, issue.InvalidStopParent, s.ID, issue.ObjectStop, s.Name).
				WithDetails("parent station is mandatory for a boarding area")
			return []issue.Issue{*iss}
		}
		if s.ParentStation != nil && s.ParentStation.LocationType != schema.LocationStopPoint {
			iss := issue.NewWithObject(issue.Warning, issue.InvalidStopParent, s.ID, issue.ObjectStop, s.Name).
				WithDetails("parent station must be a stop point").
				AddRelatedObject(issue.RelatedObjectRef(s.ParentStation.ID, issue.ObjectStop, s.ParentStation.Name))
			return []issue.Issue{*iss}
		}
	}
	return nil
}
