// Package rawfeed builds the row-level, per-file-fault-tolerant view of a
// GTFS feed described in spec.md §3/§9: each recognized file is parsed
// independently and is either absent, fully parsed, or failed with an
// error that does not prevent the rest of the feed from being read.
package rawfeed

import (
	"io"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

// BadLine pinpoints the row that made a file fail to parse.
type BadLine struct {
	LineNumber int
	Headers    []string
	Values     []string
}

// FileStatus is the per-file outcome: Present=false means the file is
// absent; Present=true with Err set means the file parsed through row N-1
// but failed on a later row (PresentWithError); Present=true with Err nil
// means every row parsed.
type FileStatus struct {
	Present bool
	Err     error
	BadLine *BadLine
}

// RawFeed is the row-array view of a feed: one field pair per recognized
// GTFS table, mirroring the original's gtfs_structures::RawGtfs
// Option<Result<Vec<T>, Error>> shape (spec §9).
type RawFeed struct {
	FileNames []string

	Agency       FileStatus
	AgencyRows   []schema.Agency
	Stops        FileStatus
	StopRows     []schema.Stop
	Routes       FileStatus
	RouteRows    []schema.Route
	Trips        FileStatus
	TripRows     []schema.Trip
	StopTimes    FileStatus
	StopTimeRows []schema.StopTime

	Calendar         FileStatus
	CalendarRows     []schema.Calendar
	CalendarDates    FileStatus
	CalendarDateRows []schema.CalendarDate
	Shapes           FileStatus
	ShapeRows        []schema.ShapePoint
	FareAttributes   FileStatus
	FareAttributeRows []schema.FareAttribute
	FareRules        FileStatus
	FareRuleRows     []schema.FareRule
	Transfers        FileStatus
	TransferRows     []schema.Transfer
	Pathways         FileStatus
	PathwayRows      []schema.Pathway
	FeedInfo         FileStatus
	FeedInfoRows     []schema.FeedInfo
	Frequencies      FileStatus
	FrequencyRows    []schema.Frequency
	Levels           FileStatus
	LevelRows        []schema.Level
}

// Load builds a RawFeed from every recognized table the loader exposes.
func Load(l *Loader) *RawFeed {
	rf := &RawFeed{FileNames: l.FileNames()}

	rf.Agency, rf.AgencyRows = loadTable(l, "agency.txt", schema.ParseAgency)
	rf.Stops, rf.StopRows = loadTable(l, "stops.txt", schema.ParseStop)
	rf.Routes, rf.RouteRows = loadTable(l, "routes.txt", schema.ParseRoute)
	rf.Trips, rf.TripRows = loadTable(l, "trips.txt", schema.ParseTrip)
	rf.StopTimes, rf.StopTimeRows = loadTable(l, "stop_times.txt", schema.ParseStopTime)

	rf.Calendar, rf.CalendarRows = loadTable(l, "calendar.txt", schema.ParseCalendar)
	rf.CalendarDates, rf.CalendarDateRows = loadTable(l, "calendar_dates.txt", schema.ParseCalendarDate)
	rf.Shapes, rf.ShapeRows = loadTable(l, "shapes.txt", schema.ParseShapePoint)
	rf.FareAttributes, rf.FareAttributeRows = loadTable(l, "fare_attributes.txt", schema.ParseFareAttribute)
	rf.FareRules, rf.FareRuleRows = loadTable(l, "fare_rules.txt", schema.ParseFareRule)
	rf.Transfers, rf.TransferRows = loadTable(l, "transfers.txt", schema.ParseTransfer)
	rf.Pathways, rf.PathwayRows = loadTable(l, "pathways.txt", schema.ParsePathway)
	rf.FeedInfo, rf.FeedInfoRows = loadTable(l, "feed_info.txt", schema.ParseFeedInfo)
	rf.Frequencies, rf.FrequencyRows = loadTable(l, "frequencies.txt", schema.ParseFrequency)
	rf.Levels, rf.LevelRows = loadTable(l, "levels.txt", schema.ParseLevel)

	return rf
}

// loadTable opens filename and parses every row with parse, stopping at the
// first row-level error (the whole file becomes PresentWithError, per the
// original's RawGtfs semantics that a single bad row fails the file, not
// just the row).
func loadTable[T any](l *Loader, filename string, parse func(map[string]string, int) (T, error)) (FileStatus, []T) {
	rc, ok := l.open(filename)
	if !ok {
		return FileStatus{Present: false}, nil
	}
	defer rc.Close()

	cf, err := newCSVFile(rc, filename)
	if err != nil {
		return FileStatus{Present: true, Err: err}, nil
	}

	var rows []T
	for {
		r, err := cf.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return FileStatus{Present: true, Err: err}, rows
		}
		parsed, perr := parse(r.values, r.lineNumber)
		if perr != nil {
			values := make([]string, len(cf.headers))
			for i, h := range cf.headers {
				values[i] = r.values[h]
			}
			return FileStatus{
				Present: true,
				Err:     perr,
				BadLine: &BadLine{LineNumber: r.lineNumber, Headers: append([]string(nil), cf.headers...), Values: values},
			}, rows
		}
		rows = append(rows, parsed)
	}
	return FileStatus{Present: true}, rows
}
