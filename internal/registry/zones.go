// Package registry handles land registry records, zoning types and the
// per-page folder layout.
package registry

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ZoneType is a zoning category from the fixed land-use enum.
type ZoneType string

// Recognized zoning categories.
const (
	ZoneResidential      ZoneType = "Residential"
	ZoneMixedResidential ZoneType = "Mixed-Used Residential"
	ZoneCommercial       ZoneType = "Commercial"
	ZoneIndustrial       ZoneType = "Industrial"
	ZonePublic           ZoneType = "Public"
	ZoneGovernment       ZoneType = "Government"
	ZoneInstitutional    ZoneType = "Institutional"
)

// UnknownZoneTypeError reports a type value outside the zoning enum.
type UnknownZoneTypeError struct {
	Type string
}

func (e *UnknownZoneTypeError) Error() string {
	return fmt.Sprintf("unknown zone type %q", e.Type)
}

// ColorTable binds zone types to their display colors.
type ColorTable map[ZoneType]color.NRGBA

// zoneColors is the static color policy, one fixed color per zoning type.
var zoneColors = ColorTable{
	ZoneResidential:      {R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, // green
	ZoneMixedResidential: {R: 0x8B, G: 0xC3, B: 0x4A, A: 0xFF}, // light green
	ZoneCommercial:       {R: 0x42, G: 0xA5, B: 0xF5, A: 0xFF}, // blue
	ZoneIndustrial:       {R: 0xFF, G: 0xCA, B: 0x28, A: 0xFF}, // yellow
	ZonePublic:           {R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}, // gray
	ZoneGovernment:       {R: 0xEF, G: 0x53, B: 0x50, A: 0xFF}, // red
	ZoneInstitutional:    {R: 0xAB, G: 0x47, B: 0xBC, A: 0xFF}, // purple
}

// DefaultColors returns a mutable copy of the static color table.
func DefaultColors() ColorTable {
	table := make(ColorTable, len(zoneColors))
	for zone, c := range zoneColors {
		table[zone] = c
	}
	return table
}

// ParseZoneType validates a type value against the zoning enum. Unknown
// values are an error, never a silent default.
func ParseZoneType(s string) (ZoneType, error) {
	zone := ZoneType(s)
	if _, ok := zoneColors[zone]; !ok {
		return "", &UnknownZoneTypeError{Type: s}
	}
	return zone, nil
}

// ParseHexColor parses a #RRGGBB color value.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
