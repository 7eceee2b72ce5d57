package render

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"ising-ca/internal/core"
)

// Image paints one pixel per cell, then upscales by scale with
// nearest-neighbour sampling so cells stay crisp.
func Image(v core.View, scale int) image.Image {
	size := v.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.Cols, size.Rows))
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			img.SetRGBA(c, r, SpinColor(v.At(r, c)))
		}
	}
	if scale <= 1 {
		return img
	}
	return transform.Resize(img, size.Cols*scale, size.Rows*scale, transform.NearestNeighbor)
}

// SavePNG writes the view as a PNG image to path.
func SavePNG(path string, v core.View, scale int) error {
	if err := imgio.Save(path, Image(v, scale), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
