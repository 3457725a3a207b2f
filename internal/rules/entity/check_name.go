package entity

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

// requiresName are the stop location types whose name is mandatory (spec §4.3).
var requiresName = map[schema.LocationType]bool{
	schema.LocationStopPoint: true,
	schema.LocationStopArea:  true,
	schema.LocationEntrance:  true,
}

// CheckName emits MissingName for routes with no short or long name, stops
// that need a name but have none, nameless agencies, and feed-info entries
// with no publisher name (spec §4.3).
func CheckName(m *model.Model) []issue.Issue {
	var issues []issue.Issue

	for _, id := range sortedRouteIDs(m) {
		r := m.Routes[id]
		if r.ShortName == "" && r.LongName == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingName, r.ID, issue.ObjectRoute, r.ID).
				WithDetails("route has neither route_short_name nor route_long_name"))
		}
	}

	for _, id := range sortedStopIDs(m) {
		s := m.Stops[id]
		if requiresName[s.LocationType] && s.Name == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingName, s.ID, issue.ObjectStop, s.ID).
				WithDetails("stop has no stop_name"))
		}
	}

	for _, id := range sortedAgencyIDs(m) {
		a := m.Agencies[id]
		if a.Name == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingName, a.ID, issue.ObjectAgency, a.ID).
				WithDetails("agency has no agency_name"))
		}
	}

	for _, fi := range m.FeedInfoRows {
		if fi.PublisherName == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingName, "", issue.ObjectFeedInfo, "").
				WithDetails("feed_info has no feed_publisher_name"))
		}
	}

	return issues
}

func sortedRouteIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Routes))
	for id := range m.Routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedStopIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Stops))
	for id := range m.Stops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
