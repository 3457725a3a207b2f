// Package model resolves a rawfeed.RawFeed into the linked object graph
// described in spec.md §3 ("LinkedModel"): trips hold ordered stop-times
// pointing at shared stop objects, routes reference agencies, calendars and
// calendar-dates are keyed by service id.
package model

import (
	"fmt"
	"sort"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

// Stop is a linked stops.txt row; ParentStation is nil when the row has no
// parent or the parent id doesn't resolve (the raw-level invalid_reference
// rule reports the latter independently).
type Stop struct {
	schema.Stop
	ParentStation *Stop
}

// Route is a linked routes.txt row.
type Route struct {
	schema.Route
	Agency *schema.Agency
}

// StopTimeEntry is one ordered stop-time within a Trip.
type StopTimeEntry struct {
	schema.StopTime
	Stop *Stop
}

// Trip is a linked trips.txt row with its resolved route and ordered stop-times.
type Trip struct {
	schema.Trip
	Route     *Route
	StopTimes []StopTimeEntry
}

// Model is the fully linked object graph. Every field is read-only for the
// remainder of the validation run (spec §5 "Shared resources").
type Model struct {
	Agencies map[string]*schema.Agency
	Stops    map[string]*Stop
	Routes   map[string]*Route
	Trips    map[string]*Trip

	Calendars     map[string]schema.Calendar
	CalendarDates map[string][]schema.CalendarDate

	// Shapes groups shapes.txt points by shape id, sorted by sequence.
	Shapes map[string][]schema.ShapePoint

	FareAttributes []schema.FareAttribute
	FareRules      []schema.FareRule
	Transfers      []schema.Transfer
	Pathways       []schema.Pathway
	FeedInfoRows   []schema.FeedInfo
	Frequencies    []schema.Frequency
	Levels         []schema.Level
}

// BuildError carries the parser failure that prevented the model from
// being constructed, including CSV-row context when the failure was a row
// decode error (spec §3 "LinkedModel").
type BuildError struct {
	FileName string
	Err      error
	BadLine  *rawfeed.BadLine
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building linked model: %s: %v", e.FileName, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// tableOrder is the fixed order tables are checked for errors in, so
// BuildError is deterministic across runs.
var tableOrder = []string{
	"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt",
	"calendar.txt", "calendar_dates.txt", "shapes.txt", "fare_attributes.txt",
	"fare_rules.txt", "transfers.txt", "pathways.txt", "feed_info.txt",
	"frequencies.txt", "levels.txt",
}

// Build constructs the linked model, or fails wholesale if any recognized
// table that was present failed to parse.
func Build(rf *rawfeed.RawFeed) (*Model, error) {
	statuses := map[string]rawfeed.FileStatus{
		"agency.txt": rf.Agency, "stops.txt": rf.Stops, "routes.txt": rf.Routes,
		"trips.txt": rf.Trips, "stop_times.txt": rf.StopTimes,
		"calendar.txt": rf.Calendar, "calendar_dates.txt": rf.CalendarDates,
		"shapes.txt": rf.Shapes, "fare_attributes.txt": rf.FareAttributes,
		"fare_rules.txt": rf.FareRules, "transfers.txt": rf.Transfers,
		"pathways.txt": rf.Pathways, "feed_info.txt": rf.FeedInfo,
		"frequencies.txt": rf.Frequencies, "levels.txt": rf.Levels,
	}
	for _, name := range tableOrder {
		st := statuses[name]
		if st.Present && st.Err != nil {
			return nil, &BuildError{FileName: name, Err: st.Err, BadLine: st.BadLine}
		}
	}

	m := &Model{
		Agencies:      make(map[string]*schema.Agency, len(rf.AgencyRows)),
		Stops:         make(map[string]*Stop, len(rf.StopRows)),
		Routes:        make(map[string]*Route, len(rf.RouteRows)),
		Trips:         make(map[string]*Trip, len(rf.TripRows)),
		Calendars:     make(map[string]schema.Calendar, len(rf.CalendarRows)),
		CalendarDates: make(map[string][]schema.CalendarDate),
		Shapes:        make(map[string][]schema.ShapePoint),

		FareAttributes: rf.FareAttributeRows,
		FareRules:      rf.FareRuleRows,
		Transfers:      rf.TransferRows,
		Pathways:       rf.PathwayRows,
		FeedInfoRows:   rf.FeedInfoRows,
		Frequencies:    rf.FrequencyRows,
		Levels:         rf.LevelRows,
	}

	for i := range rf.AgencyRows {
		a := rf.AgencyRows[i]
		m.Agencies[a.ID] = &a
	}

	for i := range rf.StopRows {
		s := rf.StopRows[i]
		m.Stops[s.ID] = &Stop{Stop: s}
	}
	for _, s := range m.Stops {
		if s.ParentStation != nil {
			continue
		}
		if s.Stop.ParentStation != "" {
			if parent, ok := m.Stops[s.Stop.ParentStation]; ok {
				s.ParentStation = parent
			}
		}
	}

	for i := range rf.RouteRows {
		r := rf.RouteRows[i]
		route := &Route{Route: r}
		if agency, ok := m.Agencies[r.AgencyID]; ok {
			route.Agency = agency
		}
		m.Routes[r.ID] = route
	}

	for i := range rf.CalendarRows {
		c := rf.CalendarRows[i]
		m.Calendars[c.ServiceID] = c
	}
	for _, cd := range rf.CalendarDateRows {
		m.CalendarDates[cd.ServiceID] = append(m.CalendarDates[cd.ServiceID], cd)
	}

	for _, sp := range rf.ShapeRows {
		m.Shapes[sp.ShapeID] = append(m.Shapes[sp.ShapeID], sp)
	}
	for id := range m.Shapes {
		pts := m.Shapes[id]
		sort.Slice(pts, func(i, j int) bool { return pts[i].Sequence < pts[j].Sequence })
		m.Shapes[id] = pts
	}

	for i := range rf.TripRows {
		t := rf.TripRows[i]
		trip := &Trip{Trip: t}
		if route, ok := m.Routes[t.RouteID]; ok {
			trip.Route = route
		}
		m.Trips[t.ID] = trip
	}

	byTrip := make(map[string][]schema.StopTime, len(m.Trips))
	for _, st := range rf.StopTimeRows {
		byTrip[st.TripID] = append(byTrip[st.TripID], st)
	}
	for tripID, rows := range byTrip {
		trip, ok := m.Trips[tripID]
		if !ok {
			continue
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].StopSequence < rows[j].StopSequence })
		entries := make([]StopTimeEntry, 0, len(rows))
		for _, st := range rows {
			entry := StopTimeEntry{StopTime: st}
			if stop, ok := m.Stops[st.StopID]; ok {
				entry.Stop = stop
			}
			entries = append(entries, entry)
		}
		trip.StopTimes = entries
	}

	return m, nil
}
