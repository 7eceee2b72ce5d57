//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"ising-ca/internal/control"
	"ising-ca/internal/core"
	"ising-ca/internal/render"
	"ising-ca/internal/sims/ising"
	"ising-ca/internal/ui"
)

const hudWidth = 260

// Game adapts the controller and world to the ebiten.Game interface. It is
// the pixel-per-cell renderer: up spins green, down spins red.
type Game struct {
	ctrl    *control.Controller
	world   *ising.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.Pacer

	upColor   color.Color
	downColor color.Color

	scale int
	chars []rune
}

// New constructs a Game for the provided controller and world.
func New(ctrl *control.Controller, world *ising.World, scale int) *Game {
	size := world.Size()
	return &Game{
		ctrl:      ctrl,
		world:     world,
		painter:   render.NewGridPainter(size.Rows, size.Cols),
		hud:       ui.NewHUD(ctrl, hudWidth),
		overlay:   ui.NewOverlay(world, scale),
		pacer:     core.NewPacer(ctrl.Delay()),
		upColor:   render.UpColor,
		downColor: render.DownColor,
		scale:     scale,
	}
}

// Update handles the typed key, if any, and runs a generation once the delay
// has elapsed. Only the first character typed this frame is used.
func (g *Game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		if ev, ok := control.KeyEvent(g.chars[0]); ok && !g.ctrl.Apply(ev) {
			return ebiten.Termination
		}
	}
	g.hud.Update(g.world.Size().Cols * g.scale)
	g.overlay.Update()

	g.pacer.SetDelay(g.ctrl.Delay())
	if g.pacer.Ready() {
		g.ctrl.Tick()
	}
	return nil
}

// Draw renders the lattice, overlay, HUD and status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Lattice(), g.upColor, g.downColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.world.Size().Cols*g.scale, g.scale)
	if status := g.ctrl.Status(); status != "" {
		text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.White)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.Cols*g.scale + hudWidth, s.Rows * g.scale
}

func runGUI(s *Session) error {
	game := New(s.Controller, s.World, s.cfg.Scale)
	size := s.World.Size()

	ebiten.SetWindowTitle("ising-ca")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.Cols*s.cfg.Scale+hudWidth, size.Rows*s.cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
