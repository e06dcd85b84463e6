package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Metriximor/Lusitania/internal/registry"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const legendRowHeight = 18

// PieChart renders the zoning distribution as a pie chart with a legend
// underneath, using the same display colors as the overlays.
func PieChart(shares []registry.ZoneShare, size int, colors registry.ColorTable) *image.RGBA {
	height := size + len(shares)*legendRowHeight + 10
	img := image.NewRGBA(image.Rect(0, 0, size, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	total := 0.0
	for _, s := range shares {
		total += s.Percent
	}
	if total <= 0 {
		return img
	}

	// segment boundaries as clockwise angles from 12 o'clock
	bounds := make([]float64, 0, len(shares)+1)
	cumulative := 0.0
	bounds = append(bounds, 0)
	for _, s := range shares {
		cumulative += s.Percent / total
		bounds = append(bounds, cumulative*2*math.Pi)
	}
	// accumulation error must not leave a sliver before 12 o'clock
	bounds[len(bounds)-1] = 2 * math.Pi

	cx := float64(size) / 2
	cy := float64(size) / 2
	r := float64(size) * 0.4

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			angle := math.Atan2(dx, -dy) // clockwise from top
			if angle < 0 {
				angle += 2 * math.Pi
			}
			for i := range shares {
				if angle >= bounds[i] && angle <= bounds[i+1] {
					img.Set(x, y, colors[shares[i].Type])
					break
				}
			}
		}
	}

	drawLegend(img, shares, size, colors)
	return img
}

func drawLegend(img *image.RGBA, shares []registry.ZoneShare, top int, colors registry.ColorTable) {
	for i, s := range shares {
		y := top + i*legendRowHeight
		swatch := image.Rect(10, y+3, 22, y+15)
		draw.Draw(img, swatch, image.NewUniform(colors[s.Type]), image.Point{}, draw.Src)
		drawLabel(img, 28, y+13, fmt.Sprintf("%s: %.1f%%", s.Type, s.Percent))
	}
}

func drawLabel(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
