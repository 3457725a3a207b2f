package schema

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/types"
)

// CalendarDate represents a parsed row of calendar_dates.txt.
type CalendarDate struct {
	ServiceID     string
	Date          *types.GTFSDate
	ExceptionType ExceptionType
}

func ParseCalendarDate(values map[string]string, row int) (CalendarDate, error) {
	date, err := types.ParseGTFSDate(values["date"])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("row %d: invalid date: %w", row, err)
	}
	return CalendarDate{
		ServiceID:     values["service_id"],
		Date:          date,
		ExceptionType: ParseExceptionType(values["exception_type"]),
	}, nil
}
