package entity

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// Routes emits InvalidRouteType for extended route types and
// MissingAgencyId for routes with no agency_id in a multi-agency feed
// (spec §4.3).
func Routes(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	multiAgency := len(m.Agencies) > 1
	for _, id := range sortedRouteIDs(m) {
		r := m.Routes[id]
		if !r.Type.Known {
			issues = append(issues, *issue.NewWithObject(issue.Information, issue.InvalidRouteType, r.ID, issue.ObjectRoute, r.ID).
				WithDetails(fmt.Sprintf("route_type %d is outside the standard 0-11 enumeration", r.Type.Code)))
		}
		if multiAgency && r.AgencyID == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingAgencyId, r.ID, issue.ObjectRoute, r.ID).
				WithDetails("route has no agency_id in a feed with more than one agency"))
		}
	}
	return issues
}
