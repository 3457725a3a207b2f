package crossentity

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

func TestShapesMissingCoordinates(t *testing.T) {
	m := &model.Model{Shapes: map[string][]schema.ShapePoint{
		"shp1": {{Lat: 0, Lon: 1, Sequence: 1}},
	}}
	issues := Shapes(m)
	if len(issues) != 2 { // MissingCoordinates + UnusedShapeId (no trip references it)
		t.Fatalf("expected two issues, got %+v", issues)
	}
	foundMissing := false
	for _, i := range issues {
		if i.IssueType == issue.MissingCoordinates {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Fatalf("expected a MissingCoordinates issue, got %+v", issues)
	}
}

func TestShapesInvalidCoordinates(t *testing.T) {
	m := &model.Model{Shapes: map[string][]schema.ShapePoint{
		"shp1": {{Lat: 500, Lon: 10, Sequence: 1}},
	}}
	issues := Shapes(m)
	found := false
	for _, i := range issues {
		if i.IssueType == issue.InvalidCoordinates {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an InvalidCoordinates issue, got %+v", issues)
	}
}

func TestShapesTripWithNoShape(t *testing.T) {
	trip := &model.Trip{Trip: schema.Trip{ID: "t1"}}
	m := &model.Model{Trips: map[string]*model.Trip{"t1": trip}}

	issues := Shapes(m)
	if len(issues) != 1 || issues[0].IssueType != issue.NoShape {
		t.Fatalf("expected a single NoShape issue, got %+v", issues)
	}
}

func TestShapesTripReferencesUnknownShape(t *testing.T) {
	trip := &model.Trip{Trip: schema.Trip{ID: "t1", ShapeID: "missing"}}
	m := &model.Model{Trips: map[string]*model.Trip{"t1": trip}}

	issues := Shapes(m)
	if len(issues) != 1 || issues[0].IssueType != issue.InvalidShapeId {
		t.Fatalf("expected a single InvalidShapeId issue, got %+v", issues)
	}
}

func TestShapesUnusedShape(t *testing.T) {
	m := &model.Model{Shapes: map[string][]schema.ShapePoint{
		"shp1": {{Lat: 1, Lon: 1, Sequence: 1}},
	}}
	issues := Shapes(m)
	if len(issues) != 1 || issues[0].IssueType != issue.UnusedShapeId {
		t.Fatalf("expected a single UnusedShapeId issue, got %+v", issues)
	}
}

func TestShapesUsedShapeIsNotFlagged(t *testing.T) {
	m := &model.Model{
		Shapes: map[string][]schema.ShapePoint{"shp1": {{Lat: 1, Lon: 1, Sequence: 1}}},
		Trips:  map[string]*model.Trip{"t1": {Trip: schema.Trip{ID: "t1", ShapeID: "shp1"}}},
	}
	if issues := Shapes(m); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
