//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ising-ca/internal/core"
)

type clusterProvider interface {
	Size() core.Size
	LastCluster() []core.Point
}

// Overlay highlights the members of the most recent Wolff cluster on top of
// the lattice. Key 1 toggles it.
type Overlay struct {
	src   clusterProvider
	scale int
	show  bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src clusterProvider, scale int) *Overlay {
	return &Overlay{src: src, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the cluster mask onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	size := o.src.Size()
	total := size.Rows * size.Cols
	if total == 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.Cols, size.Rows)
		o.maskBuf = make([]byte, 4*total)
	}
	for i := range o.maskBuf {
		o.maskBuf[i] = 0
	}
	tint := color.RGBA{R: 160, G: 160, B: 0, A: 160} // premultiplied yellow
	for _, p := range o.src.LastCluster() {
		base := (p.Row*size.Cols + p.Col) * 4
		o.maskBuf[base+0] = tint.R
		o.maskBuf[base+1] = tint.G
		o.maskBuf[base+2] = tint.B
		o.maskBuf[base+3] = tint.A
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
