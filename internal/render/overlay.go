// Package render draws plot overlays onto minimap exports.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Metriximor/Lusitania/internal/geo"
	"github.com/Metriximor/Lusitania/internal/registry"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// fillAlpha keeps the base map legible under the overlay fills.
const fillAlpha = 150

// Overlay composites the plots onto a copy of base, keyed by zone color.
// Plots draw in input order, later entries over earlier ones. The base image
// is never mutated and shapes past the canvas edges are clipped silently.
func Overlay(base image.Image, plots []registry.Plot, m geo.Mapper, colors registry.ColorTable) *image.RGBA {
	bounds := base.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, base, bounds.Min, draw.Src)

	for _, plot := range plots {
		c := colors[plot.Type]
		switch s := plot.Shape.(type) {
		case geo.Rect:
			drawRect(dst, m, s, c)
		case geo.Circle:
			drawCircle(dst, m, s, c)
		case geo.Polygon:
			drawPolygon(dst, m, s, c)
		}
	}

	return dst
}

func drawRect(dst *image.RGBA, m geo.Mapper, r geo.Rect, c color.NRGBA) {
	x1, y1 := m.WorldToPixel(r.P1)
	x2, y2 := m.WorldToPixel(r.P2)
	rect := image.Rect(round(x1), round(y1), round(x2), round(y2))

	// draw.Draw clips against dst bounds on its own
	draw.Draw(dst, rect, image.NewUniform(fillColor(c)), image.Point{}, draw.Over)
	drawRectOutline(dst, rect, c)
}

func drawCircle(dst *image.RGBA, m geo.Mapper, circ geo.Circle, c color.NRGBA) {
	cx, cy := m.WorldToPixel(circ.Center)
	r := float64(circ.Radius) * m.Scale

	bbox := image.Rect(round(cx-r), round(cy-r), round(cx+r)+1, round(cy+r)+1)
	mask := image.NewAlpha(bbox)
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}
	compositeMask(dst, bbox, mask, c)

	drawCircleOutline(dst, cx, cy, r, c)
}

func drawPolygon(dst *image.RGBA, m geo.Mapper, poly geo.Polygon, c color.NRGBA) {
	ring := make(orb.Ring, 0, len(poly.Points)+1)
	pixels := make([]image.Point, 0, len(poly.Points))
	for _, pt := range poly.Points {
		px, py := m.WorldToPixel(pt)
		ring = append(ring, orb.Point{px, py})
		pixels = append(pixels, image.Pt(round(px), round(py)))
	}
	if len(ring) == 0 {
		return
	}
	ring = append(ring, ring[0])

	bound := ring.Bound()
	bbox := image.Rect(
		int(math.Floor(bound.Min[0])), int(math.Floor(bound.Min[1])),
		int(math.Ceil(bound.Max[0]))+1, int(math.Ceil(bound.Max[1]))+1,
	)

	mask := image.NewAlpha(bbox)
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			center := orb.Point{float64(x) + 0.5, float64(y) + 0.5}
			if planar.RingContains(ring, center) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}
	compositeMask(dst, bbox, mask, c)

	for i := range pixels {
		next := pixels[(i+1)%len(pixels)]
		drawLine(dst, pixels[i].X, pixels[i].Y, next.X, next.Y, c)
	}
}

func compositeMask(dst *image.RGBA, bbox image.Rectangle, mask *image.Alpha, c color.NRGBA) {
	draw.DrawMask(dst, bbox, image.NewUniform(fillColor(c)), image.Point{}, mask, bbox.Min, draw.Over)
}

func fillColor(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: fillAlpha}
}

func drawRectOutline(dst *image.RGBA, rect image.Rectangle, c color.NRGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		setPixel(dst, x, rect.Min.Y, c)
		setPixel(dst, x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		setPixel(dst, rect.Min.X, y, c)
		setPixel(dst, rect.Max.X-1, y, c)
	}
}

func drawCircleOutline(dst *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	steps := int(r * 8)
	if steps < 64 {
		steps = 64
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		px := round(cx + r*math.Cos(angle))
		py := round(cy + r*math.Sin(angle))
		setPixel(dst, px, py, c)
	}
}

// drawLine rasterizes with Bresenham's algorithm.
func drawLine(dst *image.RGBA, x1, y1, x2, y2 int, c color.NRGBA) {
	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		setPixel(dst, x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func setPixel(dst *image.RGBA, x, y int, c color.NRGBA) {
	bounds := dst.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		dst.Set(x, y, c)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
