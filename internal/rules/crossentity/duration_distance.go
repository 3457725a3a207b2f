package crossentity

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/customrules"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/geo"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

const (
	closeStopsThresholdMeters   = 10
	nullDurationThresholdMeters = 500
	slowSpeedThresholdMs        = 0.1
)

// dedupKey is the (unordered stop pair, issue type, severity) speed-check
// aggregation key (spec §4.4, §9 "Issue deduplication").
type dedupKey struct {
	stopA, stopB string
	issueType    issue.Type
	severity     issue.Severity
}

// DurationDistance evaluates every consecutive stop-time pair of every trip
// for implausible travel speeds/durations, aggregating repeats of the same
// stop pair + issue type into a single issue (spec §4.4).
func DurationDistance(m *model.Model, rules *customrules.Rules) []issue.Issue {
	var order []dedupKey
	issuesByKey := make(map[dedupKey]*issue.Issue)

	for _, tripID := range sortedTripIDs(m) {
		trip := m.Trips[tripID]
		mode := "other"
		if trip.Route != nil {
			mode = trip.Route.Type.ModeName()
		}
		for i := 0; i+1 < len(trip.StopTimes); i++ {
			a, b := trip.StopTimes[i], trip.StopTimes[i+1]
			if a.Stop == nil || b.Stop == nil || !a.Stop.HasCoordinates || !b.Stop.HasCoordinates {
				continue
			}
			if a.DepartureTime == nil || b.ArrivalTime == nil {
				continue
			}

			d := geo.HaversineMeters(a.Stop.Lat, a.Stop.Lon, b.Stop.Lat, b.Stop.Lon)
			t := float64(b.ArrivalTime.ToSeconds() - a.DepartureTime.ToSeconds())

			itype, sev, details := classifySpeed(d, t, mode, rules)
			if itype == -1 {
				continue
			}
			key := pairKey(a.Stop.ID, b.Stop.ID, itype, sev)

			if existing, ok := issuesByKey[key]; ok {
				if trip.Route != nil {
					existing.AddRelatedObject(issue.RelatedObjectRef(trip.Route.ID, issue.ObjectRoute, routeName(trip.Route)))
				}
				continue
			}

			iss := issue.NewWithObject(sev, itype, a.Stop.ID, issue.ObjectStop, a.Stop.Name).
				WithDetails(details).
				AddRelatedObject(issue.RelatedObjectRef(b.Stop.ID, issue.ObjectStop, b.Stop.Name))
			issuesByKey[key] = iss
			order = append(order, key)
		}
	}

	issues := make([]issue.Issue, 0, len(order))
	for _, k := range order {
		issues = append(issues, *issuesByKey[k])
	}
	return issues
}

func pairKey(stopA, stopB string, t issue.Type, sev issue.Severity) dedupKey {
	if stopA > stopB {
		stopA, stopB = stopB, stopA
	}
	return dedupKey{stopA: stopA, stopB: stopB, issueType: t, severity: sev}
}

func routeName(r *model.Route) string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.LongName
}

// classifySpeed implements the cascading rule of spec §4.4. It returns
// issue.Type(-1) when none of the conditions apply.
func classifySpeed(d, t float64, mode string, rules *customrules.Rules) (issue.Type, issue.Severity, string) {
	switch {
	case d < closeStopsThresholdMeters:
		return issue.CloseStops, issue.Information, fmt.Sprintf("stops are %.1fm apart", d)
	case t == 0 && d > nullDurationThresholdMeters:
		return issue.NullDuration, issue.Warning, fmt.Sprintf("%.0fm travelled in 0 seconds", d)
	case t > 0 && d/t > rules.MaxSpeedMetersPerSecond(mode):
		speedKmh := (d / t) * 3.6
		return issue.ExcessiveSpeed, issue.Information, fmt.Sprintf("%.1f km/h over %.0fm in %.0fs", speedKmh, d, t)
	case t < 0:
		return issue.NegativeTravelTime, issue.Warning, fmt.Sprintf("%.0fm in %.0fs", d, t)
	case d/t < slowSpeedThresholdMs:
		return issue.Slow, issue.Information, fmt.Sprintf("%.2f m/s over %.0fm in %.0fs", d/t, d, t)
	default:
		return issue.Type(-1), issue.Information, ""
	}
}
