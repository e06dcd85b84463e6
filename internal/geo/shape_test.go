package geo

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseShapeStringObjectEquivalence(t *testing.T) {
	cases := []struct {
		name string
		str  string
		obj  string
	}{
		{
			name: "rect",
			str:  `"8097 3854 8108 3842"`,
			obj:  `{"p1":{"x":8097,"z":3854},"p2":{"x":8108,"z":3842}}`,
		},
		{
			name: "circle",
			str:  `"8120 3870 5"`,
			obj:  `{"center":{"x":8120,"z":3870},"radius":5}`,
		},
		{
			name: "polygon",
			str:  `"0 0 10 0 10 10 0 10"`,
			obj:  `{"points":[{"x":0,"z":0},{"x":10,"z":0},{"x":10,"z":10},{"x":0,"z":10}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fromStr, err := ParseShape(json.RawMessage(tc.str))
			if err != nil {
				t.Fatalf("parse string encoding: %v", err)
			}
			fromObj, err := ParseShape(json.RawMessage(tc.obj))
			if err != nil {
				t.Fatalf("parse object encoding: %v", err)
			}
			if !reflect.DeepEqual(fromStr, fromObj) {
				t.Errorf("encodings disagree: %#v vs %#v", fromStr, fromObj)
			}
		})
	}
}

func TestParseShapeMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"non-numeric token", `"8097 3854 x"`},
		{"too few tokens", `"1 2"`},
		{"five tokens", `"1 2 3 4 5"`},
		{"odd polygon tokens", `"1 2 3 4 5 6 7"`},
		{"incomplete rect object", `{"p1":{"x":1,"z":2}}`},
		{"two-point polygon", `{"points":[{"x":1,"z":2},{"x":3,"z":4}]}`},
		{"number literal", `42`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseShape(json.RawMessage(tc.raw))
			var shapeErr *MalformedShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("want MalformedShapeError, got %v", err)
			}
		})
	}
}

func TestShapeArea(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		want  float64
	}{
		{"rect", Rect{P1: Point{X: 8097, Z: 3854}, P2: Point{X: 8108, Z: 3842}}, 132},
		{"circle", Circle{Center: Point{X: 8120, Z: 3870}, Radius: 5}, math.Pi * 25},
		{"square polygon", Polygon{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}, 100},
		{"triangle polygon", Polygon{Points: []Point{{0, 0}, {4, 0}, {0, 3}}}, 6},
		{"degenerate polygon", Polygon{Points: []Point{{0, 0}, {1, 1}}}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.shape.Area(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Area() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestImagemapString(t *testing.T) {
	origin := Origin{X: 8090, Z: 3840}

	cases := []struct {
		name  string
		shape Shape
		want  string
	}{
		{
			name:  "rect",
			shape: Rect{P1: Point{X: 8097, Z: 3854}, P2: Point{X: 8108, Z: 3842}},
			want:  "rect 7 14 18 2",
		},
		{
			name:  "circle",
			shape: Circle{Center: Point{X: 8120, Z: 3870}, Radius: 5},
			want:  "circle 30 30 5",
		},
		{
			name:  "polygon",
			shape: Polygon{Points: []Point{{8090, 3840}, {8100, 3840}, {8100, 3850}}},
			want:  "poly 0 0 10 0 10 10",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.shape.ImagemapString(origin); got != tc.want {
				t.Errorf("ImagemapString() = %q, want %q", got, tc.want)
			}
		})
	}
}
