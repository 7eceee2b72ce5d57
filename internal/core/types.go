package core

// Size describes the dimensions of a lattice.
type Size struct {
	Rows int
	Cols int
}

// View is the read-only lattice snapshot handed to renderers.
type View interface {
	Size() Size
	At(row, col int) int8
}

// Renderer draws a lattice view together with a status line. Renderers must
// not retain the view past the call.
type Renderer interface {
	Render(v View, status string) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(v View, status string) error

// Render calls f.
func (f RendererFunc) Render(v View, status string) error { return f(v, status) }
