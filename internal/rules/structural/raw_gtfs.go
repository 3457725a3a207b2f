package structural

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// maxDisplayedShapeSequences caps how many duplicated pt_sequence values a
// single shape's DuplicateObjectId issue lists (spec §4.2), grounded on
// _examples/original_source/src/raw_gtfs.rs's MAX_DISPLAYED_PT_SEQUENCES.
const maxDisplayedShapeSequences = 10

// RawGtfsDuplicates detects repeated primary keys within stops, routes,
// trips, agencies, pathways, calendar and fare_attributes, plus the
// composite (shape_id, pt_sequence) key of shapes (spec §4.2).
func RawGtfsDuplicates(rf *rawfeed.RawFeed) []issue.Issue {
	stopIDs := make([]string, len(rf.StopRows))
	for i, s := range rf.StopRows {
		stopIDs[i] = s.ID
	}
	routeIDs := make([]string, len(rf.RouteRows))
	for i, r := range rf.RouteRows {
		routeIDs[i] = r.ID
	}
	tripIDs := make([]string, len(rf.TripRows))
	for i, t := range rf.TripRows {
		tripIDs[i] = t.ID
	}
	agencyIDs := make([]string, len(rf.AgencyRows))
	for i, a := range rf.AgencyRows {
		agencyIDs[i] = a.ID
	}
	pathwayIDs := make([]string, len(rf.PathwayRows))
	for i, p := range rf.PathwayRows {
		pathwayIDs[i] = p.ID
	}
	calendarIDs := make([]string, len(rf.CalendarRows))
	for i, c := range rf.CalendarRows {
		calendarIDs[i] = c.ServiceID
	}
	fareIDs := make([]string, len(rf.FareAttributeRows))
	for i, f := range rf.FareAttributeRows {
		fareIDs[i] = f.ID
	}

	var issues []issue.Issue
	issues = append(issues, duplicateIDs(stopIDs, issue.ObjectStop)...)
	issues = append(issues, duplicateIDs(routeIDs, issue.ObjectRoute)...)
	issues = append(issues, duplicateIDs(tripIDs, issue.ObjectTrip)...)
	issues = append(issues, duplicateIDs(agencyIDs, issue.ObjectAgency)...)
	issues = append(issues, duplicateIDs(pathwayIDs, issue.ObjectPathway)...)
	issues = append(issues, duplicateIDs(calendarIDs, issue.ObjectCalendar)...)
	issues = append(issues, duplicateIDs(fareIDs, issue.ObjectFare)...)
	issues = append(issues, duplicateShapeSequences(rf)...)

	return issues
}

// duplicateIDs emits one DuplicateObjectId issue for every repeat
// occurrence of an id (the first occurrence never triggers an issue).
func duplicateIDs(ids []string, objType issue.ObjectType) []issue.Issue {
	var issues []issue.Issue
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if seen[id] {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.DuplicateObjectId, id, objType, id))
			continue
		}
		seen[id] = true
	}
	return issues
}

func duplicateShapeSequences(rf *rawfeed.RawFeed) []issue.Issue {
	bySeq := make(map[string]map[int]int) // shape_id -> sequence -> count
	for _, sp := range rf.ShapeRows {
		if bySeq[sp.ShapeID] == nil {
			bySeq[sp.ShapeID] = make(map[int]int)
		}
		bySeq[sp.ShapeID][sp.Sequence]++
	}

	var shapeIDs []string
	for id := range bySeq {
		shapeIDs = append(shapeIDs, id)
	}
	sort.Strings(shapeIDs)

	var issues []issue.Issue
	for _, shapeID := range shapeIDs {
		var duplicated []int
		for seq, count := range bySeq[shapeID] {
			if count > 1 {
				duplicated = append(duplicated, seq)
			}
		}
		if len(duplicated) == 0 {
			continue
		}
		sort.Ints(duplicated)

		shown := duplicated
		truncated := false
		if len(shown) > maxDisplayedShapeSequences {
			shown = shown[:maxDisplayedShapeSequences]
			truncated = true
		}
		parts := make([]string, len(shown))
		for i, seq := range shown {
			parts[i] = fmt.Sprintf("%d", seq)
		}
		list := strings.Join(parts, ", ")
		if truncated {
			list += ", …"
		}
		issues = append(issues, *issue.NewWithObject(issue.Error, issue.DuplicateObjectId, shapeID, issue.ObjectShape, shapeID).
			WithDetails("Shape has duplicated pt_sequence: "+list))
	}
	return issues
}
