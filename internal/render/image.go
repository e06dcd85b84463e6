package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Options control output image encoding.
type Options struct {
	Format  string  // "png" or "webp"
	Quality float32 // webp quality
}

// Ext returns the file extension for the configured format.
func (o Options) Ext() string {
	if o.Format == "webp" {
		return ".webp"
	}
	return ".png"
}

// LoadImage opens and decodes a map image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	log.Debug().Str("path", path).Str("format", format).Msg("Image decoded")
	return img, nil
}

// Encode writes the image in the configured format.
func Encode(w io.Writer, img image.Image, opts Options) error {
	if opts.Format == "webp" {
		return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: opts.Quality})
	}
	return png.Encode(w, img)
}

// Preview returns a CatmullRom-downscaled copy capped at maxWidth pixels
// wide. Images already within the cap come back unchanged.
func Preview(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
