package crossentity

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

const maxRelatedTripsForLocationType = 20

// StopTimes emits InvalidStopLocationTypeInTrip, DuplicateStopSequence and
// NegativeStopDuration for stop_times.txt rows (spec §4.4).
func StopTimes(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	issues = append(issues, invalidStopLocationType(m)...)
	issues = append(issues, duplicateStopSequenceAndNegativeDwell(m)...)
	return issues
}

func invalidStopLocationType(m *model.Model) []issue.Issue {
	type offender struct {
		stop  *model.Stop
		trips []string
	}
	order := []string{}
	byStop := make(map[string]*offender)

	for _, tripID := range sortedTripIDs(m) {
		trip := m.Trips[tripID]
		for _, st := range trip.StopTimes {
			if st.Stop == nil || st.Stop.LocationType == schema.LocationStopPoint {
				continue
			}
			o, ok := byStop[st.Stop.ID]
			if !ok {
				o = &offender{stop: st.Stop}
				byStop[st.Stop.ID] = o
				order = append(order, st.Stop.ID)
			}
			if len(o.trips) < maxRelatedTripsForLocationType {
				o.trips = append(o.trips, trip.ID)
			}
		}
	}

	var issues []issue.Issue
	for _, stopID := range order {
		o := byStop[stopID]
		iss := issue.NewWithObject(issue.Warning, issue.InvalidStopLocationTypeInTrip, o.stop.ID, issue.ObjectStop, o.stop.Name).
			WithDetails(fmt.Sprintf("stop has location_type %s but is referenced by stop_times", o.stop.LocationType.String()))
		for _, tripID := range o.trips {
			iss.AddRelatedObject(issue.RelatedObjectRef(tripID, issue.ObjectTrip, tripID))
		}
		issues = append(issues, *iss)
	}
	return issues
}

func duplicateStopSequenceAndNegativeDwell(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, tripID := range sortedTripIDs(m) {
		trip := m.Trips[tripID]
		for i, st := range trip.StopTimes {
			if st.ArrivalTime != nil && st.DepartureTime != nil && st.ArrivalTime.ToSeconds() > st.DepartureTime.ToSeconds() {
				issues = append(issues, *issue.NewWithObject(issue.Warning, issue.NegativeStopDuration, trip.ID, issue.ObjectTrip, trip.ID).
					WithDetails(fmt.Sprintf("stop_sequence %d has arrival after departure", st.StopSequence)))
			}
			if i == 0 {
				continue
			}
			prev := trip.StopTimes[i-1]
			if prev.StopSequence != st.StopSequence {
				continue
			}
			iss := issue.NewWithObject(issue.Error, issue.DuplicateStopSequence, trip.ID, issue.ObjectTrip, trip.ID).
				WithDetails(fmt.Sprintf("two stop_times rows share stop_sequence %d", st.StopSequence))
			if prev.Stop != nil {
				iss.AddRelatedObject(issue.RelatedObjectRef(prev.Stop.ID, issue.ObjectStop, prev.Stop.Name))
			}
			if st.Stop != nil {
				iss.AddRelatedObject(issue.RelatedObjectRef(st.Stop.ID, issue.ObjectStop, st.Stop.Name))
			}
			issues = append(issues, *iss)
		}
	}
	return issues
}
