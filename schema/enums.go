package schema

import "strconv"

// LocationType mirrors the stops.txt location_type column.
type LocationType int

const (
	LocationStopPoint LocationType = 0
	LocationStopArea  LocationType = 1
	LocationEntrance  LocationType = 2
	LocationGenericNode LocationType = 3
	LocationBoardingArea LocationType = 4
)

func ParseLocationType(s string) LocationType {
	if s == "" {
		return LocationStopPoint
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return LocationStopPoint
	}
	switch n {
	case 1:
		return LocationStopArea
	case 2:
		return LocationEntrance
	case 3:
		return LocationGenericNode
	case 4:
		return LocationBoardingArea
	default:
		return LocationStopPoint
	}
}

func (l LocationType) String() string {
	switch l {
	case LocationStopArea:
		return "StopArea"
	case LocationEntrance:
		return "StationEntrance"
	case LocationGenericNode:
		return "GenericNode"
	case LocationBoardingArea:
		return "BoardingArea"
	default:
		return "StopPoint"
	}
}

// RouteType mirrors routes.txt route_type. Codes 0-7 and the hundreds-series
// codes listed on ParseRouteType are Known; every other code, 8-11 included,
// is an extended/"Other" code.
type RouteType struct {
	Known   bool
	Code    int
	Mode    string // canonical mode name, empty when Known is false
}

// ParseRouteType resolves the canonical 0-7 codes plus the extended
// hundreds-series codes (100s/300s rail, 200s coach, 400s subway, 700s/800s bus,
// 900s tramway, 1000s/1200s ferry, 1100s air, 1300s gondola, 1400s
// funicular, 1500s taxi). Anything else is an extended/unknown code.
func ParseRouteType(s string) RouteType {
	n, err := strconv.Atoi(s)
	if err != nil {
		return RouteType{Known: false, Code: -1}
	}
	hundreds := n / 100
	var mode string
	switch {
	case n == 0 || hundreds == 9:
		mode = "tramway"
	case n == 1 || hundreds == 4:
		mode = "subway"
	case n == 2 || hundreds == 1 || hundreds == 3:
		mode = "rail"
	case n == 3 || hundreds == 7 || hundreds == 8:
		mode = "bus"
	case n == 4 || hundreds == 10 || hundreds == 12:
		mode = "ferry"
	case n == 5:
		mode = "cable_car"
	case n == 6 || hundreds == 13:
		mode = "gondola"
	case n == 7 || hundreds == 14:
		mode = "funicular"
	case hundreds == 2:
		mode = "coach"
	case hundreds == 11:
		mode = "air"
	case hundreds == 15:
		mode = "taxi"
	default:
		return RouteType{Known: false, Code: n}
	}
	return RouteType{Known: true, Code: n, Mode: mode}
}

// ModeName resolves the route type to the mode name used by the
// custom-rules max-speed table, defaulting unknown/extended codes to "other".
func (r RouteType) ModeName() string {
	if r.Known {
		return r.Mode
	}
	return "other"
}

// WheelchairBoarding mirrors stops.txt/trips.txt wheelchair accessibility columns.
type WheelchairBoarding int

const (
	WheelchairInfoNotAvailable WheelchairBoarding = 0
	WheelchairAvailable        WheelchairBoarding = 1
	WheelchairNotAvailable     WheelchairBoarding = 2
)

func ParseWheelchairBoarding(s string) WheelchairBoarding {
	n, err := strconv.Atoi(s)
	if err != nil {
		return WheelchairInfoNotAvailable
	}
	switch n {
	case 1:
		return WheelchairAvailable
	case 2:
		return WheelchairNotAvailable
	default:
		return WheelchairInfoNotAvailable
	}
}

// BikesAllowed mirrors trips.txt bikes_allowed.
type BikesAllowed int

const (
	BikesNoInfo       BikesAllowed = 0
	BikesAllowedYes   BikesAllowed = 1
	BikesNotAllowed   BikesAllowed = 2
)

func ParseBikesAllowed(s string) BikesAllowed {
	n, err := strconv.Atoi(s)
	if err != nil {
		return BikesNoInfo
	}
	switch n {
	case 1:
		return BikesAllowedYes
	case 2:
		return BikesNotAllowed
	default:
		return BikesNoInfo
	}
}

// PickupDropOffType mirrors stop_times.txt pickup_type/drop_off_type.
type PickupDropOffType int

const (
	PickupDropOffRegular        PickupDropOffType = 0
	PickupDropOffNone           PickupDropOffType = 1
	PickupDropOffArrangeByPhone PickupDropOffType = 2
	PickupDropOffCoordinateWithDriver PickupDropOffType = 3
)

func ParsePickupDropOffType(s string) PickupDropOffType {
	if s == "" {
		return PickupDropOffRegular
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return PickupDropOffRegular
	}
	switch n {
	case 1:
		return PickupDropOffNone
	case 2:
		return PickupDropOffArrangeByPhone
	case 3:
		return PickupDropOffCoordinateWithDriver
	default:
		return PickupDropOffRegular
	}
}

// ExceptionType mirrors calendar_dates.txt exception_type.
type ExceptionType int

const (
	ExceptionAdded   ExceptionType = 1
	ExceptionRemoved ExceptionType = 2
)

func ParseExceptionType(s string) ExceptionType {
	n, _ := strconv.Atoi(s)
	if n == 2 {
		return ExceptionRemoved
	}
	return ExceptionAdded
}
