package crossentity

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// InterpolatedStopTimes emits ImpossibleToInterpolateStopTimes when a
// trip's first or last stop-time has no arrival/departure time to anchor
// interpolation of the times in between (spec §4.4).
func InterpolatedStopTimes(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, tripID := range sortedTripIDs(m) {
		trip := m.Trips[tripID]
		if len(trip.StopTimes) == 0 {
			continue
		}
		first := trip.StopTimes[0]
		last := trip.StopTimes[len(trip.StopTimes)-1]
		if first.ArrivalTime == nil || first.DepartureTime == nil || last.ArrivalTime == nil || last.DepartureTime == nil {
			issues = append(issues, *issue.NewWithObject(issue.Warning, issue.ImpossibleToInterpolateStopTimes, trip.ID, issue.ObjectTrip, trip.ID).
				WithDetails("trip's first or last stop_time is missing an arrival or departure time"))
		}
	}
	return issues
}
