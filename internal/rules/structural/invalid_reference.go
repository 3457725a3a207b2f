package structural

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// InvalidReference checks the cross-file id references that the raw feed
// can validate without a linked model: stop_times -> trips/stops,
// trips -> routes/calendar(+calendar_dates), routes -> agency, and
// stops -> parent_station (spec §4.2). A relationship is skipped entirely
// when the table holding the referenced ids could not be read, since the
// set of valid ids is then unknown and every reference would be flagged.
// Each missing target id yields at most one issue per relationship, with
// the first referencing object attached as a related object.
func InvalidReference(rf *rawfeed.RawFeed) []issue.Issue {
	var issues []issue.Issue

	if readable(rf.Trips) {
		tripIDs := stringSet(len(rf.TripRows))
		for _, t := range rf.TripRows {
			tripIDs[t.ID] = struct{}{}
		}
		seen := make(map[string]bool)
		for _, st := range rf.StopTimeRows {
			if st.TripID == "" || seen[st.TripID] {
				continue
			}
			if _, ok := tripIDs[st.TripID]; ok {
				continue
			}
			seen[st.TripID] = true
			issues = append(issues, *issue.NewWithObject(issue.Fatal, issue.InvalidReference, st.TripID, issue.ObjectTrip, st.TripID).
				WithDetails("stop_times.txt references unknown trip_id "+st.TripID))
		}
	}

	if readable(rf.Stops) {
		stopIDs := stringSet(len(rf.StopRows))
		for _, s := range rf.StopRows {
			stopIDs[s.ID] = struct{}{}
		}
		seen := make(map[string]bool)
		for _, st := range rf.StopTimeRows {
			if st.StopID == "" || seen[st.StopID] {
				continue
			}
			if _, ok := stopIDs[st.StopID]; ok {
				continue
			}
			seen[st.StopID] = true
			issues = append(issues, *issue.NewWithObject(issue.Fatal, issue.InvalidReference, st.StopID, issue.ObjectStop, st.StopID).
				WithDetails("stop_times.txt references unknown stop_id "+st.StopID))
		}

		seenParent := make(map[string]bool)
		for _, s := range rf.StopRows {
			if s.ParentStation == "" || seenParent[s.ParentStation] {
				continue
			}
			if _, ok := stopIDs[s.ParentStation]; ok {
				continue
			}
			seenParent[s.ParentStation] = true
			issues = append(issues, *issue.NewWithObject(issue.Fatal, issue.InvalidReference, s.ParentStation, issue.ObjectStop, s.ParentStation).
				WithDetails("stops.txt references unknown parent_station "+s.ParentStation).
				AddRelatedObject(issue.RelatedObjectRef(s.ID, issue.ObjectStop, s.Name)))
		}
	}

	if readable(rf.Routes) {
		routeIDs := stringSet(len(rf.RouteRows))
		for _, r := range rf.RouteRows {
			routeIDs[r.ID] = struct{}{}
		}
		seen := make(map[string]bool)
		for _, t := range rf.TripRows {
			if t.RouteID == "" || seen[t.RouteID] {
				continue
			}
			if _, ok := routeIDs[t.RouteID]; ok {
				continue
			}
			seen[t.RouteID] = true
			issues = append(issues, *issue.NewWithObject(issue.Fatal, issue.InvalidReference, t.RouteID, issue.ObjectRoute, t.RouteID).
				WithDetails("trips.txt references unknown route_id "+t.RouteID).
				AddRelatedObject(issue.RelatedObjectRef(t.ID, issue.ObjectTrip, t.ID)))
		}
	}

	if readable(rf.Agency) {
		agencyIDs := stringSet(len(rf.AgencyRows))
		for _, a := range rf.AgencyRows {
			agencyIDs[a.ID] = struct{}{}
		}
		seen := make(map[string]bool)
		for _, r := range rf.RouteRows {
			if r.AgencyID == "" || seen[r.AgencyID] {
				continue
			}
			if _, ok := agencyIDs[r.AgencyID]; ok {
				continue
			}
			seen[r.AgencyID] = true
			issues = append(issues, *issue.NewWithObject(issue.Fatal, issue.InvalidReference, r.AgencyID, issue.ObjectAgency, r.AgencyID).
				WithDetails("routes.txt references unknown agency_id "+r.AgencyID).
				AddRelatedObject(issue.RelatedObjectRef(r.ID, issue.ObjectRoute, r.ID)))
		}
	}

	if serviceIDsKnowable(rf) {
		serviceIDs := stringSet(len(rf.CalendarRows) + len(rf.CalendarDateRows))
		for _, c := range rf.CalendarRows {
			serviceIDs[c.ServiceID] = struct{}{}
		}
		for _, cd := range rf.CalendarDateRows {
			serviceIDs[cd.ServiceID] = struct{}{}
		}
		seen := make(map[string]bool)
		for _, t := range rf.TripRows {
			if t.ServiceID == "" || seen[t.ServiceID] {
				continue
			}
			if _, ok := serviceIDs[t.ServiceID]; ok {
				continue
			}
			seen[t.ServiceID] = true
			issues = append(issues, *issue.NewWithObject(issue.Fatal, issue.InvalidReference, t.ServiceID, issue.ObjectCalendar, t.ServiceID).
				WithDetails("trips.txt references unknown service_id "+t.ServiceID).
				AddRelatedObject(issue.RelatedObjectRef(t.ID, issue.ObjectTrip, t.ID)))
		}
	}

	return issues
}

func readable(fs rawfeed.FileStatus) bool {
	return fs.Present && fs.Err == nil
}

// serviceIDsKnowable reports whether the full set of valid service ids can
// be computed. Service ids come from calendar.txt and calendar_dates.txt
// together; a parse failure in either leaves the set partial, and with both
// files absent there is nothing to resolve against (the NoCalendar rule
// covers that case).
func serviceIDsKnowable(rf *rawfeed.RawFeed) bool {
	if rf.Calendar.Present && rf.Calendar.Err != nil {
		return false
	}
	if rf.CalendarDates.Present && rf.CalendarDates.Err != nil {
		return false
	}
	return rf.Calendar.Present || rf.CalendarDates.Present
}

func stringSet(capacity int) map[string]struct{} {
	return make(map[string]struct{}, capacity)
}
