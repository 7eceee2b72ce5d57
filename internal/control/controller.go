package control

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// TemperatureFactor is applied per hotter/colder event.
	TemperatureFactor = 1.1
	// MaxDelay caps the per-generation delay in milliseconds.
	MaxDelay = 500.0
	// WolffScale converts steps-per-generation into Wolff sweeps. One sweep
	// does about a lattice's worth of Metropolis attempts.
	WolffScale = 1000.0
	// HistoryCap bounds the magnetization history.
	HistoryCap = 120
)

// Engine is the simulation driven by the controller.
type Engine interface {
	Metropolis(n int) int
	Wolff(n int) int
	Temperature() float64
	SetTemperature(t float64) error
	Magnetization() float64
}

// Options are the initial controller parameters.
type Options struct {
	Algorithm Algorithm
	// Delay between generations in milliseconds.
	Delay float64
	// Steps per generation in Metropolis units.
	Steps    float64
	ShowInfo bool
	Logger   *log.Logger
}

// Controller is the interaction state machine: it maps operator events onto
// simulation parameters, decides how much work each generation does, and
// tracks the acceptance rate since the last parameter change.
type Controller struct {
	engine Engine
	logger *log.Logger

	algorithm Algorithm
	delay     float64
	steps     float64
	showInfo  bool

	stepCount int
	accepted  int

	history []float64
}

// New returns a controller driving engine.
func New(engine Engine, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		engine:    engine,
		logger:    logger,
		algorithm: opts.Algorithm,
		delay:     math.Max(opts.Delay, 0),
		steps:     opts.Steps,
		showInfo:  opts.ShowInfo,
		history:   make([]float64, 0, HistoryCap),
	}
	c.steps = math.Max(c.steps, c.minSteps())
	return c
}

// Apply handles one event. It returns false when the event asks the loop to
// stop.
func (c *Controller) Apply(ev Event) bool {
	switch ev {
	case Hotter:
		c.scaleTemperature(TemperatureFactor)
	case Colder:
		c.scaleTemperature(1 / TemperatureFactor)
	case Faster:
		switch {
		case c.delay > 10:
			c.delay -= 10
		case c.delay > 0:
			c.delay = math.Max(c.delay-1, 0)
		}
	case Slower:
		switch {
		case c.delay < 10:
			c.delay++
		case c.delay < MaxDelay:
			c.delay = math.Min(c.delay+10, MaxDelay)
		}
	case MoreSteps:
		c.steps = nextStep(c.steps)
	case LessSteps:
		c.steps = prevStep(c.steps, c.minSteps())
	case ToggleInfo:
		c.showInfo = !c.showInfo
	case ManualWolff:
		c.engine.Wolff(1)
		c.record()
		c.resetCounters()
	case SwitchAlgorithm:
		if c.algorithm == Metropolis {
			c.algorithm = Wolff
			c.steps = math.Max(c.steps, WolffScale)
		} else {
			c.algorithm = Metropolis
		}
		c.resetCounters()
	case Quit:
		c.logger.Debug("quit requested")
		return false
	default:
		return true
	}
	c.logger.Debug("event", "event", ev, "algorithm", c.algorithm,
		"temp", c.engine.Temperature(), "delay", c.DelayMillis(), "steps", c.EffectiveSteps())
	return true
}

func (c *Controller) scaleTemperature(factor float64) {
	t := c.engine.Temperature() * factor
	if err := c.engine.SetTemperature(t); err != nil {
		c.logger.Warn("temperature unchanged", "err", err)
	}
	c.resetCounters()
}

func (c *Controller) resetCounters() {
	c.stepCount = 0
	c.accepted = 0
}

func (c *Controller) minSteps() float64 {
	if c.algorithm == Wolff {
		return WolffScale
	}
	return 1
}

// Tick runs one generation of the active algorithm and returns the number of
// accepted moves.
func (c *Controller) Tick() int {
	n := c.EffectiveSteps()
	var accepted int
	if c.algorithm == Wolff {
		accepted = c.engine.Wolff(n)
	} else {
		accepted = c.engine.Metropolis(n)
	}
	c.stepCount += n
	c.accepted += accepted
	c.record()
	return accepted
}

func (c *Controller) record() {
	if len(c.history) == HistoryCap {
		copy(c.history, c.history[1:])
		c.history = c.history[:HistoryCap-1]
	}
	c.history = append(c.history, c.engine.Magnetization())
}

// EffectiveSteps is the number of updater calls per generation: rounded
// steps for Metropolis, steps/1000 rounded up for Wolff.
func (c *Controller) EffectiveSteps() int {
	if c.algorithm == Wolff {
		return int(math.Ceil(c.steps / WolffScale))
	}
	return int(math.Round(c.steps))
}

// AcceptanceRate is accepted/steps since the last reset, or 1 with no data.
func (c *Controller) AcceptanceRate() float64 {
	if c.stepCount == 0 {
		return 1
	}
	return float64(c.accepted) / float64(c.stepCount)
}

// Counters returns the step and accepted counts since the last reset.
func (c *Controller) Counters() (steps, accepted int) { return c.stepCount, c.accepted }

// Algorithm returns the active algorithm.
func (c *Controller) Algorithm() Algorithm { return c.algorithm }

// Steps returns the raw steps-per-generation value.
func (c *Controller) Steps() float64 { return c.steps }

// DelayMillis returns the delay rounded to whole milliseconds.
func (c *Controller) DelayMillis() int { return int(c.delay + 0.49) }

// Delay returns the delay between generations.
func (c *Controller) Delay() time.Duration {
	return time.Duration(c.DelayMillis()) * time.Millisecond
}

// ShowInfo reports whether the status line is enabled.
func (c *Controller) ShowInfo() bool { return c.showInfo }

// Temperature returns the engine temperature.
func (c *Controller) Temperature() float64 { return c.engine.Temperature() }

// History returns recent magnetization values, oldest first. The slice is
// owned by the controller.
func (c *Controller) History() []float64 { return c.history }

// Status formats the status line, or returns "" when info is hidden.
func (c *Controller) Status() string {
	if !c.showInfo {
		return ""
	}
	return fmt.Sprintf("  Algorithm: %s"+
		"  Temperature: %.6f"+
		"  Magnetization: % .3f"+
		"  Delay: %d ms"+
		"  Steps per generation: %d"+
		"  Acceptance: %.6f"+
		"  Commands: %s  ",
		c.algorithm, c.engine.Temperature(), c.engine.Magnetization(),
		c.DelayMillis(), c.EffectiveSteps(), c.AcceptanceRate(), Commands)
}
