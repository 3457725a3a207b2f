// Package metadata computes the feed-wide summary described in spec.md
// §4.7, grounded on _examples/original_source/src/metadatas.rs.
package metadata

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/rawfeed"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/types"
)

// ValidatorVersion is the auditor's own version string, reported in every
// Metadata (spec §4.7).
const ValidatorVersion = "1.0.0"

// Extract computes every basic (RawFeed-only) field of Metadata.
func Extract(rf *rawfeed.RawFeed) *issue.Metadata {
	md := issue.NewMetadata()
	md.ValidatorVersion = ValidatorVersion

	extractDateRange(rf, md)
	extractCounts(rf, md)
	extractNetworksAndModes(rf, md)
	extractFeedInfo(rf, md)
	extractFeatureFlags(rf, md)

	return md
}

func extractDateRange(rf *rawfeed.RawFeed, md *issue.Metadata) {
	var minDate, maxDate *types.GTFSDate
	consider := func(d *types.GTFSDate) {
		if d == nil {
			return
		}
		if minDate == nil || d.Before(minDate) {
			minDate = d
		}
		if maxDate == nil || d.After(maxDate) {
			maxDate = d
		}
	}
	for _, c := range rf.CalendarRows {
		consider(c.StartDate)
		consider(c.EndDate)
	}
	for _, cd := range rf.CalendarDateRows {
		if cd.ExceptionType == schema.ExceptionAdded {
			consider(cd.Date)
		}
	}
	if minDate != nil {
		md.StartDate = minDate.ISODate()
		md.EndDate = maxDate.ISODate()
	}
}

func extractCounts(rf *rawfeed.RawFeed, md *issue.Metadata) {
	md.StopsCount = len(rf.StopRows)
	for _, s := range rf.StopRows {
		switch s.LocationType {
		case schema.LocationStopArea:
			md.StopAreasCount++
		case schema.LocationStopPoint:
			md.StopPointsCount++
		}
	}
	md.RouteCount = len(rf.RouteRows)
	md.TripCount = len(rf.TripRows)

	for _, t := range rf.TripRows {
		if t.BikesAllowed != schema.BikesNoInfo {
			md.TripsWithBikesInfoCount++
		}
		if t.WheelchairAccessible != schema.WheelchairInfoNotAvailable {
			md.TripsWithWheelchairInfoCount++
		}
		if t.ShapeID != "" {
			md.TripsWithShapeCount++
		}
		if t.Headsign != "" {
			md.TripsWithHeadsignCount++
		}
	}

	for _, r := range rf.RouteRows {
		if hasCustomColor(r) {
			md.RoutesWithCustomColorCount++
		}
		if r.ShortName != "" {
			md.RoutesWithShortNameCount++
		}
		if r.LongName != "" {
			md.RoutesWithLongNameCount++
		}
	}

	md.FareAttributeCount = len(rf.FareAttributeRows)
	md.FareRuleCount = len(rf.FareRuleRows)
	md.TransferCount = len(rf.TransferRows)
}

func hasCustomColor(r schema.Route) bool {
	textColor := types.DefaultRouteTextColor
	routeColor := types.DefaultRouteColor
	if r.TextColor != "" {
		if c, err := types.ParseGTFSColor(r.TextColor); err == nil {
			textColor = *c
		}
	}
	if r.Color != "" {
		if c, err := types.ParseGTFSColor(r.Color); err == nil {
			routeColor = *c
		}
	}
	return !textColor.Equal(&types.DefaultRouteTextColor) || !routeColor.Equal(&types.DefaultRouteColor)
}

func extractNetworksAndModes(rf *rawfeed.RawFeed, md *issue.Metadata) {
	seenNetwork := make(map[string]bool)
	for _, a := range rf.AgencyRows {
		if a.Name != "" && !seenNetwork[a.Name] {
			seenNetwork[a.Name] = true
			md.Networks = append(md.Networks, a.Name)
		}
	}
	seenMode := make(map[string]bool)
	for _, r := range rf.RouteRows {
		if !r.Type.Known {
			continue
		}
		if !seenMode[r.Type.Mode] {
			seenMode[r.Type.Mode] = true
			md.Modes = append(md.Modes, r.Type.Mode)
		}
	}
}

func extractFeedInfo(rf *rawfeed.RawFeed, md *issue.Metadata) {
	for _, fi := range rf.FeedInfoRows {
		if fi.PublisherName == "" {
			continue
		}
		if md.FeedInfo == nil {
			md.FeedInfo = make(map[string]issue.FeedInfoSummary)
		}
		md.FeedInfo[fi.PublisherName] = issue.FeedInfoSummary{
			ContactEmail: fi.ContactEmail,
			StartDate:    fi.StartDate,
			EndDate:      fi.EndDate,
		}
	}
}

func extractFeatureFlags(rf *rawfeed.RawFeed, md *issue.Metadata) {
	md.HasFares = len(rf.FareAttributeRows) > 0
	md.HasShapes = len(rf.ShapeRows) > 0
	md.HasPathways = len(rf.PathwayRows) > 0

	for _, st := range rf.StopTimeRows {
		if st.PickupType == schema.PickupDropOffArrangeByPhone || st.DropOffType == schema.PickupDropOffArrangeByPhone {
			md.SomeStopsNeedPhoneAgency = true
		}
		if st.PickupType == schema.PickupDropOffCoordinateWithDriver || st.DropOffType == schema.PickupDropOffCoordinateWithDriver {
			md.SomeStopsNeedPhoneDriver = true
		}
	}
}

// EnrichAdvanced populates the fields that require a successfully linked
// model (spec §4.7 "Advanced").
func EnrichAdvanced(m *model.Model, md *issue.Metadata) {
	md.StopsWithWheelchairInfoCount = countWheelchairInfoStops(m)
	md.NetworksStartEndDates = networksStartEndDates(m, md)
}

func countWheelchairInfoStops(m *model.Model) int {
	count := 0
	for _, s := range m.Stops {
		if s.WheelchairBoarding != schema.WheelchairInfoNotAvailable {
			count++
			continue
		}
		if s.ParentStation != nil && s.ParentStation.WheelchairBoarding != schema.WheelchairInfoNotAvailable {
			count++
		}
	}
	return count
}

func networksStartEndDates(m *model.Model, md *issue.Metadata) map[string]issue.NetworkDateRange {
	if len(m.Agencies) == 1 && md.StartDate != "" {
		for _, a := range m.Agencies {
			return map[string]issue.NetworkDateRange{
				a.Name: {Start: md.StartDate, End: md.EndDate},
			}
		}
	}

	type minMax struct{ min, max *types.GTFSDate }
	byAgency := make(map[string]*minMax)

	for _, trip := range m.Trips {
		if trip.Route == nil || trip.Route.Agency == nil {
			continue
		}
		agencyName := trip.Route.Agency.Name
		cal, hasCal := m.Calendars[trip.ServiceID]
		var dates []*types.GTFSDate
		if hasCal {
			dates = append(dates, cal.StartDate, cal.EndDate)
		}
		for _, cd := range m.CalendarDates[trip.ServiceID] {
			if cd.ExceptionType == schema.ExceptionAdded {
				dates = append(dates, cd.Date)
			}
		}
		if len(dates) == 0 {
			continue
		}
		mm, ok := byAgency[agencyName]
		if !ok {
			mm = &minMax{}
			byAgency[agencyName] = mm
		}
		for _, d := range dates {
			if d == nil {
				continue
			}
			if mm.min == nil || d.Before(mm.min) {
				mm.min = d
			}
			if mm.max == nil || d.After(mm.max) {
				mm.max = d
			}
		}
	}

	out := make(map[string]issue.NetworkDateRange, len(byAgency))
	for name, mm := range byAgency {
		if mm.min == nil {
			continue
		}
		out[name] = issue.NetworkDateRange{Start: mm.min.ISODate(), End: mm.max.ISODate()}
	}
	return out
}
