package schema

import (
	"fmt"
	"strconv"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/types"
)

// StopTime represents a parsed row of stop_times.txt.
type StopTime struct {
	TripID            string
	ArrivalTime       *types.GTFSTime
	DepartureTime     *types.GTFSTime
	StopID            string
	StopSequence      int
	Headsign          string
	PickupType        PickupDropOffType
	DropOffType       PickupDropOffType
	ShapeDistTraveled *float64
}

func ParseStopTime(values map[string]string, row int) (StopTime, error) {
	seqStr := values["stop_sequence"]
	seq, err := strconv.Atoi(seqStr)
	if err != nil {
		return StopTime{}, fmt.Errorf("row %d: invalid stop_sequence %q", row, seqStr)
	}

	st := StopTime{
		TripID:       values["trip_id"],
		StopID:       values["stop_id"],
		StopSequence: seq,
		Headsign:     values["stop_headsign"],
		PickupType:   ParsePickupDropOffType(values["pickup_type"]),
		DropOffType:  ParsePickupDropOffType(values["drop_off_type"]),
	}

	if a := values["arrival_time"]; a != "" {
		t, err := types.ParseGTFSTime(a)
		if err != nil {
			return StopTime{}, fmt.Errorf("row %d: invalid arrival_time %q", row, a)
		}
		st.ArrivalTime = t
	}
	if d := values["departure_time"]; d != "" {
		t, err := types.ParseGTFSTime(d)
		if err != nil {
			return StopTime{}, fmt.Errorf("row %d: invalid departure_time %q", row, d)
		}
		st.DepartureTime = t
	}
	if dt := values["shape_dist_traveled"]; dt != "" {
		v, err := strconv.ParseFloat(dt, 64)
		if err == nil {
			st.ShapeDistTraveled = &v
		}
	}
	return st, nil
}
