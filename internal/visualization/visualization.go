// Package visualization attaches a GeoJSON FeatureCollection to
// stop-related issues, per spec.md §4.8. Grounded on
// _examples/original_source/src/visualization.rs, which only handled the
// Stop case with Point features; this adds the LineString-per-related-stop
// geometry and property copy spec.md requires.
package visualization

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/geo"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// Enrich populates i.GeoJSON in place when i's subject is a Stop. Issues
// whose subject is not a Stop, or whose subject stop has no coordinates,
// are left untouched.
func Enrich(m *model.Model, i *issue.Issue) {
	if i.ObjectType == nil || *i.ObjectType != issue.ObjectStop {
		return
	}
	subject, ok := m.Stops[i.ObjectID]
	if !ok || !subject.HasCoordinates {
		return
	}

	fc := issue.NewFeatureCollection()
	fc.Features = append(fc.Features, issue.PointFeature(subject.Lon, subject.Lat, map[string]interface{}{
		"id":   subject.ID,
		"name": subject.Name,
	}))

	for _, ro := range i.RelatedObjects {
		if ro.ObjectType == nil || *ro.ObjectType != issue.ObjectStop {
			continue
		}
		related, ok := m.Stops[ro.ID]
		if !ok || !related.HasCoordinates {
			continue
		}
		fc.Features = append(fc.Features, issue.PointFeature(related.Lon, related.Lat, map[string]interface{}{
			"id":   related.ID,
			"name": related.Name,
		}))

		if geo.CoordinatesCoincide(subject.Lat, subject.Lon, related.Lat, related.Lon) {
			continue
		}
		var props map[string]interface{}
		if i.Details != "" {
			props = map[string]interface{}{"details": i.Details}
		}
		fc.Features = append(fc.Features, issue.LineStringFeature(subject.Lon, subject.Lat, related.Lon, related.Lat, props))
	}

	i.GeoJSON = fc
}
