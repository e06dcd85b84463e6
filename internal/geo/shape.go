// Package geo handles plot geometry and world-to-pixel coordinate conversions.
package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a world position in block coordinates.
type Point struct {
	X int `json:"x" yaml:"x"`
	Z int `json:"z" yaml:"z"`
}

// Shape is a plot geometry variant: Rect, Circle or Polygon.
type Shape interface {
	// Area returns the covered ground area in square blocks.
	Area() float64
	// ImagemapString renders the shape as a MediaWiki imagemap geometry
	// line with coordinates relative to the image origin.
	ImagemapString(origin Origin) string
}

// Rect is an axis-aligned rectangle between two corner points.
type Rect struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Circle is a disc around a center point.
type Circle struct {
	Center Point `json:"center"`
	Radius int   `json:"radius"`
}

// Polygon is a closed path through at least three points.
type Polygon struct {
	Points []Point `json:"points"`
}

func (r Rect) Area() float64 {
	width := math.Abs(float64(r.P2.X - r.P1.X))
	height := math.Abs(float64(r.P2.Z - r.P1.Z))
	return width * height
}

func (c Circle) Area() float64 {
	return math.Pi * float64(c.Radius) * float64(c.Radius)
}

// Area uses the shoelace formula over the closed ring.
func (p Polygon) Area() float64 {
	if len(p.Points) < 3 {
		return 0
	}
	return math.Abs(planar.Area(p.Ring()))
}

// Ring returns the polygon as a closed orb ring.
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.Points)+1)
	for _, pt := range p.Points {
		ring = append(ring, orb.Point{float64(pt.X), float64(pt.Z)})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

func (r Rect) ImagemapString(origin Origin) string {
	return fmt.Sprintf("rect %s %s", r.P1.imagemapCoords(origin), r.P2.imagemapCoords(origin))
}

func (c Circle) ImagemapString(origin Origin) string {
	return fmt.Sprintf("circle %s %d", c.Center.imagemapCoords(origin), c.Radius)
}

func (p Polygon) ImagemapString(origin Origin) string {
	coords := make([]string, 0, len(p.Points))
	for _, pt := range p.Points {
		coords = append(coords, pt.imagemapCoords(origin))
	}
	return "poly " + strings.Join(coords, " ")
}

// imagemapCoords renders the point as offsets from the image origin, the
// coordinate form MediaWiki imagemaps expect.
func (p Point) imagemapCoords(origin Origin) string {
	return fmt.Sprintf("%d %d", abs(origin.X-p.X), abs(origin.Z-p.Z))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
