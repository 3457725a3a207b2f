package crossentity

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

func TestUnusableTripFewerThanTwoStops(t *testing.T) {
	s := &model.Stop{Stop: schema.Stop{ID: "s1"}}
	trip := &model.Trip{Trip: schema.Trip{ID: "t1"}, StopTimes: []model.StopTimeEntry{{Stop: s}}}
	m := &model.Model{Trips: map[string]*model.Trip{"t1": trip}}

	issues := UnusableTrip(m)
	if len(issues) != 1 || issues[0].IssueType != issue.UnusableTrip {
		t.Fatalf("expected a single UnusableTrip issue, got %+v", issues)
	}
}

func TestUnusableTripDuplicateStopDoesNotCountTwice(t *testing.T) {
	s := &model.Stop{Stop: schema.Stop{ID: "s1"}}
	trip := &model.Trip{Trip: schema.Trip{ID: "t1"}, StopTimes: []model.StopTimeEntry{{Stop: s}, {Stop: s}}}
	m := &model.Model{Trips: map[string]*model.Trip{"t1": trip}}

	issues := UnusableTrip(m)
	if len(issues) != 1 || issues[0].IssueType != issue.UnusableTrip {
		t.Fatalf("expected a single UnusableTrip issue, got %+v", issues)
	}
}

func TestUnusableTripWithTwoDistinctStops(t *testing.T) {
	s1 := &model.Stop{Stop: schema.Stop{ID: "s1"}}
	s2 := &model.Stop{Stop: schema.Stop{ID: "s2"}}
	trip := &model.Trip{Trip: schema.Trip{ID: "t1"}, StopTimes: []model.StopTimeEntry{{Stop: s1}, {Stop: s2}}}
	m := &model.Model{Trips: map[string]*model.Trip{"t1": trip}}

	if issues := UnusableTrip(m); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
