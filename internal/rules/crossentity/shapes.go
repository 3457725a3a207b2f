package crossentity

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// Shapes emits MissingCoordinates/InvalidCoordinates for bad shape points,
// InvalidShapeId for trips referencing an absent shape, UnusedShapeId for
// shapes no trip references, and NoShape for trips with no shape at all
// (spec §4.4). The open question in spec §9 ("either coordinate zero
// triggers MissingCoordinates") is resolved conservatively, matching the
// stops.txt rule.
func Shapes(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	issues = append(issues, shapePointIssues(m)...)
	issues = append(issues, shapeReferenceIssues(m)...)
	return issues
}

func shapePointIssues(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, shapeID := range sortedShapeIDs(m) {
		for _, pt := range m.Shapes[shapeID] {
			if pt.Lat == 0 || pt.Lon == 0 {
				issues = append(issues, *issue.NewWithObject(issue.Warning, issue.MissingCoordinates, shapeID, issue.ObjectShape, shapeID).
					WithDetails("shape point has a missing or zero coordinate"))
				continue
			}
			if pt.Lon < -180 || pt.Lon > 180 || pt.Lat < -90 || pt.Lat > 90 {
				issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidCoordinates, shapeID, issue.ObjectShape, shapeID).
					WithDetails("shape point coordinates out of range"))
			}
		}
	}
	return issues
}

func shapeReferenceIssues(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	usedShapes := make(map[string]bool)

	for _, tripID := range sortedTripIDs(m) {
		trip := m.Trips[tripID]
		if trip.ShapeID == "" {
			issues = append(issues, *issue.NewWithObject(issue.Information, issue.NoShape, trip.ID, issue.ObjectTrip, trip.ID).
				WithDetails("trip has no shape_id"))
			continue
		}
		if _, ok := m.Shapes[trip.ShapeID]; !ok {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidShapeId, trip.ID, issue.ObjectTrip, trip.ID).
				WithDetails("trip references unknown shape_id "+trip.ShapeID))
			continue
		}
		usedShapes[trip.ShapeID] = true
	}

	for _, shapeID := range sortedShapeIDs(m) {
		if !usedShapes[shapeID] {
			issues = append(issues, *issue.NewWithObject(issue.Information, issue.UnusedShapeId, shapeID, issue.ObjectShape, shapeID).
				WithDetails("shape is never referenced by a trip"))
		}
	}
	return issues
}
