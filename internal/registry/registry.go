package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Metriximor/Lusitania/internal/geo"
)

// Plot is one land registry entry, immutable once loaded.
type Plot struct {
	Shape   geo.Shape
	Owner   string
	Date    time.Time
	Type    ZoneType
	Name    string
	Address string
	Details string
}

// Owners splits the comma-separated owner field into individual owners.
func (p Plot) Owners() []string {
	return strings.Split(p.Owner, ", ")
}

// MissingFieldError reports a required key absent from a record.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Index, e.Field)
}

// rawPlot mirrors the JSON schema before shape, date and type validation.
type rawPlot struct {
	Shape   json.RawMessage `json:"shape"`
	Owner   string          `json:"owner"`
	Date    string          `json:"date"`
	Type    string          `json:"type"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Details string          `json:"details"`
}

// LoadPlots reads and validates a land registry JSON file. Any invalid
// record fails the whole load.
func LoadPlots(path string) ([]Plot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []rawPlot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	plots := make([]Plot, 0, len(raw))
	for i, r := range raw {
		plot, err := r.validate(i)
		if err != nil {
			return nil, err
		}
		plots = append(plots, plot)
	}

	return plots, nil
}

func (r rawPlot) validate(index int) (Plot, error) {
	switch {
	case len(r.Shape) == 0:
		return Plot{}, &MissingFieldError{Index: index, Field: "shape"}
	case r.Owner == "":
		return Plot{}, &MissingFieldError{Index: index, Field: "owner"}
	case r.Date == "":
		return Plot{}, &MissingFieldError{Index: index, Field: "date"}
	case r.Type == "":
		return Plot{}, &MissingFieldError{Index: index, Field: "type"}
	}

	shape, err := geo.ParseShape(r.Shape)
	if err != nil {
		return Plot{}, fmt.Errorf("record %d: %w", index, err)
	}

	zone, err := ParseZoneType(r.Type)
	if err != nil {
		return Plot{}, fmt.Errorf("record %d: %w", index, err)
	}

	date, err := parseDate(r.Date)
	if err != nil {
		return Plot{}, fmt.Errorf("record %d: invalid date %q", index, r.Date)
	}

	return Plot{
		Shape:   shape,
		Owner:   r.Owner,
		Date:    date,
		Type:    zone,
		Name:    r.Name,
		Address: r.Address,
		Details: r.Details,
	}, nil
}

// parseDate accepts a plain ISO date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
