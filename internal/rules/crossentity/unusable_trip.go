package crossentity

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// UnusableTrip emits UnusableTrip for trips visiting fewer than two
// distinct stops (spec §4.4).
func UnusableTrip(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, tripID := range sortedTripIDs(m) {
		trip := m.Trips[tripID]
		distinct := make(map[string]bool, len(trip.StopTimes))
		for _, st := range trip.StopTimes {
			if st.Stop != nil {
				distinct[st.Stop.ID] = true
			}
		}
		if len(distinct) < 2 {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.UnusableTrip, trip.ID, issue.ObjectTrip, trip.ID).
				WithDetails("trip visits fewer than two distinct stops"))
		}
	}
	return issues
}
