package ising

import (
	"errors"
	"fmt"
	"math"

	"ising-ca/internal/core"
	rng "ising-ca/pkg/core"
)

// ErrTemperature reports a temperature that is not finite and positive, or
// whose inverse overflows.
var ErrTemperature = errors.New("temperature must be finite and positive")

// World is a 2D Ising model on a toroidal lattice at inverse temperature beta.
// It owns the lattice and the random streams; neither may be shared with
// another goroutine.
type World struct {
	cfg Config

	lattice *core.Lattice
	streams *rng.Streams
	beta    float64

	lastCluster []core.Point
}

// New builds a world from cfg and initializes the spins from
// cfg.Params.Fraction using cfg.Seed.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lat, err := core.NewLattice(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		lattice: lat,
		streams: rng.NewStreams(cfg.Rows, cfg.Cols, cfg.Seed),
		beta:    1 / cfg.Params.Temperature,
	}
	w.lattice.InitRandom(cfg.Params.Fraction, cfg.Seed)
	return w, nil
}

// Config returns the configuration the world was built from, with the live
// temperature.
func (w *World) Config() Config {
	c := w.cfg
	c.Params.Temperature = w.Temperature()
	return c
}

// Lattice exposes the spin lattice.
func (w *World) Lattice() *core.Lattice { return w.lattice }

// Size reports the lattice dimensions.
func (w *World) Size() core.Size { return w.lattice.Size() }

// Temperature returns T = 1/beta.
func (w *World) Temperature() float64 { return 1 / w.beta }

// Beta returns the inverse temperature.
func (w *World) Beta() float64 { return w.beta }

// SetTemperature sets T. Values failing ValidTemperature are rejected and
// leave the world unchanged.
func (w *World) SetTemperature(t float64) error {
	if !ValidTemperature(t) {
		return fmt.Errorf("set temperature %v: %w", t, ErrTemperature)
	}
	w.beta = 1 / t
	return nil
}

// Magnetization returns the mean spin.
func (w *World) Magnetization() float64 { return w.lattice.NetMagnetization() }

// Energy returns the energy per site.
func (w *World) Energy() float64 { return w.lattice.Energy() }

// Reset re-initializes the spins and reseeds the streams. A zero seed reuses
// the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.streams.Reseed(effective)
	w.lattice.InitRandom(w.cfg.Params.Fraction, effective)
	w.lastCluster = w.lastCluster[:0]
}

// LastCluster returns the members of the most recent Wolff cluster. The slice
// is owned by the world and replaced on the next sweep.
func (w *World) LastCluster() []core.Point { return w.lastCluster }

// bondProbability is the Wolff bond activation probability 1 - exp(-2 beta).
func (w *World) bondProbability() float64 {
	return 1 - math.Exp(-2*w.beta)
}
