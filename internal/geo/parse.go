package geo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MalformedShapeError reports a shape value that cannot be parsed into any
// of the supported variants.
type MalformedShapeError struct {
	Raw    string
	Reason string
}

func (e *MalformedShapeError) Error() string {
	return fmt.Sprintf("malformed shape %s: %s", e.Raw, e.Reason)
}

// rawShape mirrors the object encoding of a shape before dispatch.
type rawShape struct {
	P1     *Point  `json:"p1"`
	P2     *Point  `json:"p2"`
	Center *Point  `json:"center"`
	Radius *int    `json:"radius"`
	Points []Point `json:"points"`
}

// ParseShape resolves a raw shape value, either a plain coordinate string or
// a structured object, into its normalized variant. Both encodings of the
// same shape produce identical results.
func ParseShape(raw json.RawMessage) (Shape, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseShapeString(s)
	}

	var obj rawShape
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &MalformedShapeError{Raw: string(raw), Reason: "not a string or object"}
	}

	switch {
	case obj.P1 != nil && obj.P2 != nil:
		return Rect{P1: *obj.P1, P2: *obj.P2}, nil
	case obj.Center != nil && obj.Radius != nil:
		return Circle{Center: *obj.Center, Radius: *obj.Radius}, nil
	case len(obj.Points) >= 3:
		return Polygon{Points: obj.Points}, nil
	case obj.Points != nil:
		return nil, &MalformedShapeError{Raw: string(raw), Reason: "polygon needs at least 3 points"}
	}

	return nil, &MalformedShapeError{Raw: string(raw), Reason: "unrecognized shape keys, want p1/p2, center/radius or points"}
}

// parseShapeString dispatches on the token count: two points make a
// rectangle, a point plus radius makes a circle, three or more points make
// a polygon.
func parseShapeString(s string) (Shape, error) {
	fields := strings.Fields(s)
	coords := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &MalformedShapeError{Raw: strconv.Quote(s), Reason: fmt.Sprintf("non-numeric token %q", f)}
		}
		coords = append(coords, n)
	}

	switch {
	case len(coords) == 4:
		return Rect{
			P1: Point{X: coords[0], Z: coords[1]},
			P2: Point{X: coords[2], Z: coords[3]},
		}, nil
	case len(coords) == 3:
		return Circle{Center: Point{X: coords[0], Z: coords[1]}, Radius: coords[2]}, nil
	case len(coords) >= 6 && len(coords)%2 == 0:
		points := make([]Point, 0, len(coords)/2)
		for i := 0; i < len(coords); i += 2 {
			points = append(points, Point{X: coords[i], Z: coords[i+1]})
		}
		return Polygon{Points: points}, nil
	}

	return nil, &MalformedShapeError{Raw: strconv.Quote(s), Reason: fmt.Sprintf("ambiguous token count %d", len(coords))}
}
