package entity

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/schema"
)

func TestCalendarEmitsNoCalendarWhenBothFilesEmpty(t *testing.T) {
	m := &model.Model{}
	issues := Calendar(m)
	if len(issues) != 1 || issues[0].IssueType != issue.NoCalendar {
		t.Fatalf("expected a single NoCalendar issue, got %+v", issues)
	}
}

func TestCalendarSilentWithCalendarRows(t *testing.T) {
	m := &model.Model{Calendars: map[string]schema.Calendar{"sv1": {}}}
	if issues := Calendar(m); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestCalendarSilentWithCalendarDatesOnly(t *testing.T) {
	m := &model.Model{CalendarDates: map[string][]schema.CalendarDate{"sv1": {{}}}}
	if issues := Calendar(m); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
