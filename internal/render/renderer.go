//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ising-ca/internal/core"
)

// GridPainter updates a single RGBA image from lattice spins, one pixel per
// cell.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	spins      []int8
}

// NewGridPainter allocates a painter for a rows x cols lattice.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the view into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, v core.View, up, down color.Color, scale int) {
	size := v.Size()
	if size.Rows != gp.rows || size.Cols != gp.cols {
		return
	}
	gp.spins = viewSpins(gp.spins, v)
	fillSpinRGBA(gp.buf, gp.spins, up, down)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the lattice dimensions of the painter.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
