package entity

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// CheckId emits MissingId for any route/trip/calendar/stop/shape (and, only
// in a multi-agency feed, agency) with an empty id, and IdNotAscii for
// non-ASCII ids (spec §4.3).
func CheckId(m *model.Model) []issue.Issue {
	var issues []issue.Issue

	for _, id := range sortedRouteIDs(m) {
		issues = append(issues, checkOneID(id, issue.ObjectRoute)...)
	}
	for _, id := range sortedTripIDs(m) {
		issues = append(issues, checkOneID(id, issue.ObjectTrip)...)
	}
	for _, id := range sortedCalendarIDs(m) {
		issues = append(issues, checkOneID(id, issue.ObjectCalendar)...)
	}
	for _, id := range sortedStopIDs(m) {
		issues = append(issues, checkOneID(id, issue.ObjectStop)...)
	}
	for _, id := range sortedShapeIDs(m) {
		issues = append(issues, checkOneID(id, issue.ObjectShape)...)
	}
	if len(m.Agencies) > 1 {
		for _, id := range sortedAgencyIDs(m) {
			issues = append(issues, checkOneID(id, issue.ObjectAgency)...)
		}
	}

	return issues
}

func checkOneID(id string, objType issue.ObjectType) []issue.Issue {
	if id == "" {
		return []issue.Issue{
			*issue.NewWithObject(issue.Error, issue.MissingId, id, objType, id).
				WithDetails(string(objType) + " has an empty id"),
		}
	}
	if !isASCII(id) {
		return []issue.Issue{
			*issue.NewWithObject(issue.Warning, issue.IdNotAscii, id, objType, id).
				WithDetails(string(objType) + " id " + id + " contains non-ASCII characters"),
		}
	}
	return nil
}

func sortedTripIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Trips))
	for id := range m.Trips {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedCalendarIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Calendars))
	for id := range m.Calendars {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedShapeIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Shapes))
	for id := range m.Shapes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
