package metadata

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/types"
)

func date(t *testing.T, s string) *types.GTFSDate {
	t.Helper()
	d, err := types.ParseGTFSDate(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return d
}

func TestExtractDateRangeFromCalendar(t *testing.T) {
	rf := &rawfeed.RawFeed{
		CalendarRows: []schema.Calendar{
			{ServiceID: "a", StartDate: date(t, "20170101"), EndDate: date(t, "20170110")},
			{ServiceID: "b", StartDate: date(t, "20170105"), EndDate: date(t, "20170115")},
		},
	}

	md := Extract(rf)
	if md.StartDate != "2017-01-01" || md.EndDate != "2017-01-15" {
		t.Fatalf("unexpected date range: %s .. %s", md.StartDate, md.EndDate)
	}
}

func TestExtractDateRangeFromCalendarDatesAlone(t *testing.T) {
	rf := &rawfeed.RawFeed{
		CalendarDateRows: []schema.CalendarDate{
			{ServiceID: "a", Date: date(t, "20170301"), ExceptionType: schema.ExceptionAdded},
			{ServiceID: "a", Date: date(t, "20170310"), ExceptionType: schema.ExceptionAdded},
			{ServiceID: "a", Date: date(t, "20170401"), ExceptionType: schema.ExceptionRemoved},
		},
	}

	md := Extract(rf)
	if md.StartDate != "2017-03-01" || md.EndDate != "2017-03-10" {
		t.Fatalf("expected removed exceptions to be ignored, got %s .. %s", md.StartDate, md.EndDate)
	}
}

func TestExtractCounts(t *testing.T) {
	rf := &rawfeed.RawFeed{
		StopRows: []schema.Stop{
			{ID: "s1", LocationType: schema.LocationStopPoint},
			{ID: "s2", LocationType: schema.LocationStopPoint},
			{ID: "sa", LocationType: schema.LocationStopArea},
			{ID: "e", LocationType: schema.LocationEntrance},
		},
		RouteRows: []schema.Route{
			{ID: "r1", ShortName: "1"},
			{ID: "r2", LongName: "Long", Color: "FF0000"},
		},
		TripRows: []schema.Trip{
			{ID: "t1", Headsign: "Downtown", ShapeID: "sh1", BikesAllowed: schema.BikesAllowedYes},
			{ID: "t2", WheelchairAccessible: schema.WheelchairAvailable},
		},
		FareAttributeRows: []schema.FareAttribute{{ID: "f1"}},
		TransferRows:      []schema.Transfer{{FromStopID: "s1", ToStopID: "s2"}},
	}

	md := Extract(rf)
	if md.StopsCount != 4 || md.StopPointsCount != 2 || md.StopAreasCount != 1 {
		t.Fatalf("unexpected stop counts: %+v", md)
	}
	if md.RouteCount != 2 || md.TripCount != 2 {
		t.Fatalf("unexpected route/trip counts: %+v", md)
	}
	if md.TripsWithBikesInfoCount != 1 || md.TripsWithWheelchairInfoCount != 1 {
		t.Fatalf("unexpected accessibility counts: %+v", md)
	}
	if md.TripsWithShapeCount != 1 || md.TripsWithHeadsignCount != 1 {
		t.Fatalf("unexpected shape/headsign counts: %+v", md)
	}
	if md.RoutesWithShortNameCount != 1 || md.RoutesWithLongNameCount != 1 || md.RoutesWithCustomColorCount != 1 {
		t.Fatalf("unexpected route detail counts: %+v", md)
	}
	if md.FareAttributeCount != 1 || md.TransferCount != 1 {
		t.Fatalf("unexpected fare/transfer counts: %+v", md)
	}
	if !md.HasFares || md.HasShapes || md.HasPathways {
		t.Fatalf("unexpected feature flags: %+v", md)
	}
}

func TestExtractNetworksAndModes(t *testing.T) {
	rf := &rawfeed.RawFeed{
		AgencyRows: []schema.Agency{{ID: "1", Name: "BIBUS"}, {ID: "2", Name: "Ter"}, {ID: "3", Name: "BIBUS"}},
		RouteRows: []schema.Route{
			{ID: "r1", Type: schema.ParseRouteType("3")},
			{ID: "r2", Type: schema.ParseRouteType("3")},
			{ID: "r3", Type: schema.ParseRouteType("0")},
			{ID: "r4", Type: schema.ParseRouteType("9999")},
		},
	}

	md := Extract(rf)
	if len(md.Networks) != 2 || md.Networks[0] != "BIBUS" || md.Networks[1] != "Ter" {
		t.Fatalf("unexpected networks: %+v", md.Networks)
	}
	if len(md.Modes) != 2 || md.Modes[0] != "bus" || md.Modes[1] != "tramway" {
		t.Fatalf("expected extended codes to be excluded from modes, got %+v", md.Modes)
	}
}

func TestExtractPhoneFlags(t *testing.T) {
	rf := &rawfeed.RawFeed{
		StopTimeRows: []schema.StopTime{
			{TripID: "t1", PickupType: schema.PickupDropOffArrangeByPhone},
			{TripID: "t1", DropOffType: schema.PickupDropOffCoordinateWithDriver},
		},
	}

	md := Extract(rf)
	if !md.SomeStopsNeedPhoneAgency || !md.SomeStopsNeedPhoneDriver {
		t.Fatalf("expected both phone flags set, got %+v", md)
	}
}

func TestEnrichAdvancedWheelchairCount(t *testing.T) {
	parent := &model.Stop{Stop: schema.Stop{ID: "p", WheelchairBoarding: schema.WheelchairAvailable}}
	m := &model.Model{
		Stops: map[string]*model.Stop{
			"p":  parent,
			"s1": {Stop: schema.Stop{ID: "s1", WheelchairBoarding: schema.WheelchairNotAvailable}},
			"s2": {Stop: schema.Stop{ID: "s2"}, ParentStation: parent},
			"s3": {Stop: schema.Stop{ID: "s3"}},
		},
	}

	md := Extract(&rawfeed.RawFeed{})
	EnrichAdvanced(m, md)
	if md.StopsWithWheelchairInfoCount != 3 {
		t.Fatalf("expected p, s1 and s2 to count, got %d", md.StopsWithWheelchairInfoCount)
	}
}

func TestEnrichAdvancedSingleAgencyReusesGlobalDates(t *testing.T) {
	rf := &rawfeed.RawFeed{
		AgencyRows: []schema.Agency{{ID: "1", Name: "BIBUS"}},
		CalendarRows: []schema.Calendar{
			{ServiceID: "sv1", StartDate: date(t, "20170101"), EndDate: date(t, "20170115")},
		},
	}
	m := &model.Model{
		Agencies: map[string]*schema.Agency{"1": {ID: "1", Name: "BIBUS"}},
	}

	md := Extract(rf)
	EnrichAdvanced(m, md)

	r, ok := md.NetworksStartEndDates["BIBUS"]
	if !ok {
		t.Fatalf("expected BIBUS in networks_start_end_dates, got %+v", md.NetworksStartEndDates)
	}
	if r.Start != "2017-01-01" || r.End != "2017-01-15" {
		t.Fatalf("expected the global range, got %+v", r)
	}
}

func TestEnrichAdvancedMultiAgencyWalksTrips(t *testing.T) {
	agency1 := &schema.Agency{ID: "1", Name: "First"}
	agency2 := &schema.Agency{ID: "2", Name: "Second"}
	route1 := &model.Route{Route: schema.Route{ID: "r1", AgencyID: "1"}, Agency: agency1}
	route2 := &model.Route{Route: schema.Route{ID: "r2", AgencyID: "2"}, Agency: agency2}

	m := &model.Model{
		Agencies: map[string]*schema.Agency{"1": agency1, "2": agency2},
		Calendars: map[string]schema.Calendar{
			"sv1": {ServiceID: "sv1", StartDate: date(t, "20170101"), EndDate: date(t, "20170131")},
			"sv2": {ServiceID: "sv2", StartDate: date(t, "20170201"), EndDate: date(t, "20170228")},
		},
		CalendarDates: map[string][]schema.CalendarDate{},
		Trips: map[string]*model.Trip{
			"t1": {Trip: schema.Trip{ID: "t1", ServiceID: "sv1"}, Route: route1},
			"t2": {Trip: schema.Trip{ID: "t2", ServiceID: "sv2"}, Route: route2},
		},
	}

	md := Extract(&rawfeed.RawFeed{})
	EnrichAdvanced(m, md)

	first := md.NetworksStartEndDates["First"]
	second := md.NetworksStartEndDates["Second"]
	if first.Start != "2017-01-01" || first.End != "2017-01-31" {
		t.Fatalf("unexpected range for First: %+v", first)
	}
	if second.Start != "2017-02-01" || second.End != "2017-02-28" {
		t.Fatalf("unexpected range for Second: %+v", second)
	}
}
