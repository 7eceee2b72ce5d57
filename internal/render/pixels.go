package render

import (
	"image/color"

	"ising-ca/internal/core"
)

var (
	// UpColor is used for +1 spins.
	UpColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	// DownColor is used for -1 spins.
	DownColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	// InvalidColor marks cells holding neither spin value.
	InvalidColor = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
)

// SpinColor maps a spin to its display color.
func SpinColor(s int8) color.RGBA {
	switch s {
	case 1:
		return UpColor
	case -1:
		return DownColor
	}
	return InvalidColor
}

// fillSpinRGBA converts spins (+1/-1) into RGBA pixels in buf, which must
// hold 4 bytes per spin.
func fillSpinRGBA(buf []byte, spins []int8, up, down color.Color) {
	rUp, gUp, bUp, aUp := up.RGBA()
	rDown, gDown, bDown, aDown := down.RGBA()
	for i, s := range spins {
		base := i * 4
		if s > 0 {
			buf[base+0] = uint8(rUp >> 8)
			buf[base+1] = uint8(gUp >> 8)
			buf[base+2] = uint8(bUp >> 8)
			buf[base+3] = uint8(aUp >> 8)
			continue
		}
		buf[base+0] = uint8(rDown >> 8)
		buf[base+1] = uint8(gDown >> 8)
		buf[base+2] = uint8(bDown >> 8)
		buf[base+3] = uint8(aDown >> 8)
	}
}

// viewSpins copies a view into a row-major spin slice, reusing dst when it is
// large enough.
func viewSpins(dst []int8, v core.View) []int8 {
	size := v.Size()
	n := size.Rows * size.Cols
	if cap(dst) < n {
		dst = make([]int8, n)
	}
	dst = dst[:n]
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			dst[r*size.Cols+c] = v.At(r, c)
		}
	}
	return dst
}
