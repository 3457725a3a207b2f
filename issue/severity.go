package issue

import (
	"encoding/json"
	"fmt"
)

// Severity ranks how much an issue undermines confidence in the feed.
type Severity int

const (
	Information Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Fatal:
		return "FATAL"
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	default:
		return "INFORMATION"
	}
}

// MarshalYAML renders the severity as its name rather than its ordinal.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// MarshalJSON renders the severity as its name rather than its ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "FATAL":
		*s = Fatal
	case "ERROR":
		*s = Error
	case "WARNING":
		*s = Warning
	case "INFORMATION":
		*s = Information
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}
