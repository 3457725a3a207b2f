package issue

import (
	"encoding/json"
	"fmt"
)

// Type is a closed enumeration of the categories a validation issue can
// fall into. The declaration order below is the order Response.validations
// iterates in; it is never reordered alphabetically or by severity.
type Type int

const (
	InvalidArchive Type = iota
	UnloadableModel
	MissingMandatoryFile
	ExtraFile
	SubFolder
	DuplicateObjectId
	InvalidReference

	MissingName
	MissingId
	MissingUrl
	InvalidUrl
	MissingLanguage
	InvalidLanguage
	InvalidTimezone
	MissingPrice
	InvalidCurrency
	InvalidTransfers
	InvalidTransferDuration
	InvalidRouteType
	MissingAgencyId
	MissingCoordinates
	InvalidCoordinates
	InvalidStopParent
	IdNotAscii

	CloseStops
	Slow
	ExcessiveSpeed
	NullDuration
	NegativeTravelTime
	NegativeStopDuration
	DuplicateStops
	DuplicateStopSequence
	InvalidStopLocationTypeInTrip
	ImpossibleToInterpolateStopTimes
	InvalidShapeId
	UnusedShapeId
	NoShape
	UnusedStop
	UnusableTrip
	NoCalendar

	numIssueTypes
)

var typeNames = [numIssueTypes]string{
	InvalidArchive:       "InvalidArchive",
	UnloadableModel:      "UnloadableModel",
	MissingMandatoryFile: "MissingMandatoryFile",
	ExtraFile:            "ExtraFile",
	SubFolder:            "SubFolder",
	DuplicateObjectId:    "DuplicateObjectId",
	InvalidReference:     "InvalidReference",

	MissingName:             "MissingName",
	MissingId:               "MissingId",
	MissingUrl:              "MissingUrl",
	InvalidUrl:              "InvalidUrl",
	MissingLanguage:         "MissingLanguage",
	InvalidLanguage:         "InvalidLanguage",
	InvalidTimezone:         "InvalidTimezone",
	MissingPrice:            "MissingPrice",
	InvalidCurrency:         "InvalidCurrency",
	InvalidTransfers:        "InvalidTransfers",
	InvalidTransferDuration: "InvalidTransferDuration",
	InvalidRouteType:        "InvalidRouteType",
	MissingAgencyId:         "MissingAgencyId",
	MissingCoordinates:      "MissingCoordinates",
	InvalidCoordinates:      "InvalidCoordinates",
	InvalidStopParent:       "InvalidStopParent",
	IdNotAscii:              "IdNotAscii",

	CloseStops:                       "CloseStops",
	Slow:                             "Slow",
	ExcessiveSpeed:                   "ExcessiveSpeed",
	NullDuration:                     "NullDuration",
	NegativeTravelTime:               "NegativeTravelTime",
	NegativeStopDuration:             "NegativeStopDuration",
	DuplicateStops:                   "DuplicateStops",
	DuplicateStopSequence:            "DuplicateStopSequence",
	InvalidStopLocationTypeInTrip:    "InvalidStopLocationTypeInTrip",
	ImpossibleToInterpolateStopTimes: "ImpossibleToInterpolateStopTimes",
	InvalidShapeId:                   "InvalidShapeId",
	UnusedShapeId:                    "UnusedShapeId",
	NoShape:                          "NoShape",
	UnusedStop:                       "UnusedStop",
	UnusableTrip:                     "UnusableTrip",
	NoCalendar:                       "NoCalendar",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t Type) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// TypeFromName resolves an issue-type name back to its enum value.
func TypeFromName(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := TypeFromName(name)
	if !ok {
		return fmt.Errorf("unknown issue type %q", name)
	}
	*t = parsed
	return nil
}

// AllTypes returns every issue type in enumeration (iteration) order.
func AllTypes() []Type {
	out := make([]Type, numIssueTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}
