package schema

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/types"
)

// Calendar represents a parsed row of calendar.txt.
type Calendar struct {
	ServiceID string
	Weekdays  [7]bool // Monday=0 ... Sunday=6
	StartDate *types.GTFSDate
	EndDate   *types.GTFSDate
}

func ParseCalendar(values map[string]string, row int) (Calendar, error) {
	c := Calendar{ServiceID: values["service_id"]}
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, d := range days {
		c.Weekdays[i] = values[d] == "1"
	}
	start, err := types.ParseGTFSDate(values["start_date"])
	if err != nil {
		return Calendar{}, fmt.Errorf("row %d: invalid start_date: %w", row, err)
	}
	end, err := types.ParseGTFSDate(values["end_date"])
	if err != nil {
		return Calendar{}, fmt.Errorf("row %d: invalid end_date: %w", row, err)
	}
	c.StartDate, c.EndDate = start, end
	return c, nil
}
