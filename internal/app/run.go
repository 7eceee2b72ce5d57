package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"ising-ca/internal/control"
	"ising-ca/internal/core"
	"ising-ca/internal/render"
	"ising-ca/internal/sims/ising"
	"ising-ca/internal/tui"
)

// ErrNoGUI is returned by the gui front-end in builds without the ebiten tag.
var ErrNoGUI = errors.New("the gui front-end requires building with the 'ebiten' tag")

// defaultSide is the lattice side used when no terminal size is available.
const defaultSide = 256

// Session is one simulation run: the world, its controller and the selected
// front-end.
type Session struct {
	cfg    *Config
	logger *log.Logger

	World      *ising.World
	Controller *control.Controller
}

// NewSession validates cfg and builds the world and controller.
func NewSession(cfg *Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var loaded *core.Lattice
	if cfg.Load != "" {
		lat, err := loadState(cfg.Load)
		if err != nil {
			return nil, err
		}
		loaded = lat
	}
	rows, cols := cfg.Rows, cfg.Cols
	if loaded != nil {
		rows, cols = loaded.Rows(), loaded.Cols()
	} else if rows == 0 || cols == 0 {
		rows, cols = defaultDimensions(cfg)
	}

	world, err := ising.New(cfg.WorldConfig(rows, cols))
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if loaded != nil {
		if err := world.Load(loaded); err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.Load, err)
		}
	}
	ctrl := control.New(world, cfg.ControllerOptions(logger))
	logger.Info("session ready", "rows", rows, "cols", cols, "temp", cfg.Temp,
		"algorithm", ctrl.Algorithm(), "seed", cfg.Seed, "ui", cfg.UI)
	return &Session{cfg: cfg, logger: logger, World: world, Controller: ctrl}, nil
}

func defaultDimensions(cfg *Config) (rows, cols int) {
	rows, cols = cfg.Rows, cfg.Cols
	termRows, termCols, ok := 0, 0, false
	if cfg.UI == UITerminal || cfg.UI == UIPlain {
		termRows, termCols, ok = terminalSize(os.Stdout)
		if ok && cfg.UI == UITerminal {
			termRows -= tui.PanelHeight + 1
		}
	}
	if rows == 0 {
		rows = defaultSide
		if ok && termRows > 0 {
			rows = termRows
		}
	}
	if cols == 0 {
		cols = defaultSide
		if ok {
			cols = termCols
		}
	}
	return rows, cols
}

func loadState(path string) (*core.Lattice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	defer f.Close()
	lat, err := ising.ReadState(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lat, nil
}

// Run starts the configured front-end and blocks until it ends, then writes
// the state dump if one was requested.
func (s *Session) Run(ctx context.Context) error {
	var err error
	switch s.cfg.UI {
	case UITerminal:
		err = tui.Run(s.Controller, s.World.Lattice())
	case UIPlain:
		err = s.runPlain(ctx)
	case UIGUI:
		err = runGUI(s)
	case UIHeadless:
		err = s.runHeadless(ctx)
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	steps, accepted := s.Controller.Counters()
	s.logger.Info("run finished", "temp", s.Controller.Temperature(),
		"magnetization", s.World.Magnetization(), "energy", s.World.Energy(),
		"steps", steps, "accepted", accepted)
	if s.cfg.Dump != "" {
		if dumpErr := s.dump(); dumpErr != nil {
			return errors.Join(err, dumpErr)
		}
	}
	return err
}

func (s *Session) runHeadless(ctx context.Context) error {
	loop := &control.Loop{
		Controller: s.Controller,
		View:       s.World.Lattice(),
		MaxTicks:   s.cfg.Ticks,
	}
	ticks, err := loop.Run(ctx)
	s.logger.Debug("headless loop ended", "ticks", ticks)
	return err
}

func (s *Session) runPlain(ctx context.Context) error {
	restore, err := rawTerminal(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer restore()

	loop := &control.Loop{
		Controller: s.Controller,
		View:       s.World.Lattice(),
		Keys:       control.ChanKeys{C: readKeys(os.Stdin)},
		Renderer:   render.NewText(crlfWriter{w: os.Stdout}),
		MaxTicks:   s.cfg.Ticks,
	}
	_, err = loop.Run(ctx)
	return err
}

func (s *Session) dump() error {
	format, err := ising.ParseFormat(s.cfg.DumpFormat)
	if err != nil {
		return err
	}
	f, err := os.Create(s.cfg.Dump)
	if err != nil {
		return fmt.Errorf("create dump: %w", err)
	}
	if err := ising.WriteState(f, s.World.Lattice(), format); err != nil {
		f.Close()
		return fmt.Errorf("write dump: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dump: %w", err)
	}
	s.logger.Info("state written", "path", s.cfg.Dump, "format", s.cfg.DumpFormat)
	return nil
}
