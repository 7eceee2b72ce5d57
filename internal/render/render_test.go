package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising-ca/internal/core"
)

func checkerboard(t *testing.T, rows, cols int) *core.Lattice {
	t.Helper()
	lat, err := core.NewLattice(rows, cols)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if (r+c)%2 == 1 {
				lat.Set(r, c, -1)
			}
		}
	}
	return lat
}

func TestTextRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)
	require.NoError(t, r.Render(checkerboard(t, 2, 3), "status"))
	assert.Equal(t, "\x1b[0;0fO O\n O \x1b[0;0fstatus", buf.String())

	buf.Reset()
	require.NoError(t, r.Render(checkerboard(t, 1, 2), ""))
	assert.Equal(t, "\x1b[0;0fO \x1b[0;0f", buf.String())
}

func TestFillSpinRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillSpinRGBA(buf, []int8{1, -1}, UpColor, DownColor)
	assert.Equal(t, []byte{0, 0xff, 0, 0xff, 0xff, 0, 0, 0xff}, buf)
}

func TestViewSpinsReusesBuffer(t *testing.T) {
	lat := checkerboard(t, 2, 2)
	dst := make([]int8, 0, 8)
	got := viewSpins(dst, lat)
	assert.Equal(t, []int8{1, -1, -1, 1}, got)
	assert.Equal(t, 8, cap(got))
}

func TestSpinColor(t *testing.T) {
	assert.Equal(t, UpColor, SpinColor(1))
	assert.Equal(t, DownColor, SpinColor(-1))
	assert.Equal(t, InvalidColor, SpinColor(0))
}

func TestImageScales(t *testing.T) {
	img := Image(checkerboard(t, 2, 3), 3)
	assert.Equal(t, image.Rect(0, 0, 9, 6), img.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(UpColor), color.RGBAModel.Convert(img.At(1, 1)))
	assert.Equal(t, color.RGBAModel.Convert(DownColor), color.RGBAModel.Convert(img.At(4, 1)))

	img = Image(checkerboard(t, 2, 3), 1)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.png")
	require.NoError(t, SavePNG(path, checkerboard(t, 4, 4), 3))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	r, g, b, _ := img.At(4, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}
