// Package crossentity implements the linked-level rules that reason across
// more than one table at once: unused_stop, duplicate_stops,
// duration_distance, interpolated_stoptimes, stop_times, shapes and
// unusable_trip (spec.md §4.4).
package crossentity

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

// UnusedStop emits UnusedStop for StopPoint/StopArea stops never reached by
// a stop-time. A stop area referenced only through a referenced child is
// not unused (spec §4.4).
func UnusedStop(m *model.Model) []issue.Issue {
	referenced := make(map[string]bool)
	for _, trip := range m.Trips {
		for _, st := range trip.StopTimes {
			if st.Stop == nil {
				continue
			}
			referenced[st.Stop.ID] = true
		}
	}
	for id := range referenced {
		s := m.Stops[id]
		for s != nil && s.ParentStation != nil && !referenced[s.ParentStation.ID] {
			referenced[s.ParentStation.ID] = true
			s = s.ParentStation
		}
	}

	var issues []issue.Issue
	for _, id := range sortedStopIDs(m) {
		s := m.Stops[id]
		if s.LocationType != schema.LocationStopPoint && s.LocationType != schema.LocationStopArea {
			continue
		}
		if referenced[s.ID] {
			continue
		}
		issues = append(issues, *issue.NewWithObject(issue.Information, issue.UnusedStop, s.ID, issue.ObjectStop, s.Name).
			WithDetails("stop is never referenced by a stop_times row"))
	}
	return issues
}

func sortedStopIDs(m *model.Model) []string {
	ids := make([]string, 0, len(m.Stops))
	for id := range m.Stops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
