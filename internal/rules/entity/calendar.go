package entity

import (
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// Calendar emits the feed-wide NoCalendar warning when both calendar.txt
// and calendar_dates.txt are empty (spec §4.3).
func Calendar(m *model.Model) []issue.Issue {
	if len(m.Calendars) == 0 && len(m.CalendarDates) == 0 {
		return []issue.Issue{
			*issue.New(issue.Warning, issue.NoCalendar, "").
				WithDetails("feed has neither calendar.txt nor calendar_dates.txt rows"),
		}
	}
	return nil
}
