package render

import (
	"bufio"
	"io"

	"ising-ca/internal/core"
)

const (
	upGlyph   = 'O'
	downGlyph = ' '
	// cursorHome moves the terminal cursor to the top-left corner.
	cursorHome = "\x1b[0;0f"
)

// Text draws one character per cell to a terminal: 'O' for up spins and a
// blank for down spins. The status line is written over the top-left corner.
type Text struct {
	w *bufio.Writer
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// Render implements core.Renderer.
func (t *Text) Render(v core.View, status string) error {
	size := v.Size()
	t.w.WriteString(cursorHome)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if v.At(r, c) == 1 {
				t.w.WriteByte(upGlyph)
			} else {
				t.w.WriteByte(downGlyph)
			}
		}
		if r != size.Rows-1 {
			t.w.WriteByte('\n')
		}
	}
	t.w.WriteString(cursorHome)
	t.w.WriteString(status)
	return t.w.Flush()
}
