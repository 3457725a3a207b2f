package types

import (
	"fmt"
	"strconv"
	"strings"
)

// GTFSColor represents a color in GTFS format (6-digit hexadecimal)
type GTFSColor struct {
	R, G, B uint8
}

// DefaultRouteColor and DefaultRouteTextColor are the values route_color and
// route_text_color default to in routes.txt when left blank.
var (
	DefaultRouteColor     = GTFSColor{R: 0xFF, G: 0xFF, B: 0xFF}
	DefaultRouteTextColor = GTFSColor{R: 0x00, G: 0x00, B: 0x00}
)

// ParseGTFSColor parses a GTFS color string (6-digit hex without #)
func ParseGTFSColor(s string) (*GTFSColor, error) {
	// Remove # if present
	s = strings.TrimPrefix(s, "#")

	if len(s) != 6 {
		return nil, fmt.Errorf("invalid GTFS color format: %s (expected 6 hex digits)", s)
	}

	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color: %s", s)
	}

	return &GTFSColor{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}, nil
}

// String returns the GTFS color as a 6-digit hex string
func (c *GTFSColor) String() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ToHTMLColor returns the color as an HTML color string (with #)
func (c *GTFSColor) ToHTMLColor() string {
	return "#" + c.String()
}

// Equal reports whether two colors carry the same RGB channels.
func (c *GTFSColor) Equal(other *GTFSColor) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}
