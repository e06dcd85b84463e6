package geo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// originPattern captures the world X and Z encoded in a minimap filename.
var originPattern = regexp.MustCompile(`_x(-?\d+)_z(-?\d+)\.png$`)

// ImageNamingError reports an image filename missing the origin suffix.
type ImageNamingError struct {
	Filename string
}

func (e *ImageNamingError) Error() string {
	return fmt.Sprintf("image filename %q does not match the _x<int>_z<int>.png origin pattern", e.Filename)
}

// Origin is the world position of an image's bottom-left corner.
type Origin struct {
	X int
	Z int
}

// ParseOrigin extracts the world origin from a minimap export filename.
func ParseOrigin(filename string) (Origin, error) {
	m := originPattern.FindStringSubmatch(filename)
	if m == nil {
		return Origin{}, &ImageNamingError{Filename: filename}
	}

	// the pattern guarantees both captures are integers
	x, _ := strconv.Atoi(m[1])
	z, _ := strconv.Atoi(m[2])

	return Origin{X: x, Z: z}, nil
}

// Mapper converts world coordinates to pixel positions on a minimap export.
type Mapper struct {
	Origin Origin
	Scale  float64 // pixels per block
	Height int     // image height in pixels
}

// WorldToPixel maps a world point to image pixel coordinates. The vertical
// axis is flipped: world Z grows away from the bottom-left origin while
// image Y grows downward from the top. Out-of-bounds results are returned
// as-is, clipping happens at the drawing surface.
func (m Mapper) WorldToPixel(p Point) (px, py float64) {
	px = float64(p.X-m.Origin.X) * m.Scale
	py = float64(m.Height) - float64(p.Z-m.Origin.Z)*m.Scale
	return px, py
}

// PixelToWorld inverts WorldToPixel, rounding to the nearest block.
func (m Mapper) PixelToWorld(px, py float64) Point {
	x := px/m.Scale + float64(m.Origin.X)
	z := (float64(m.Height)-py)/m.Scale + float64(m.Origin.Z)
	return Point{X: int(math.Round(x)), Z: int(math.Round(z))}
}
