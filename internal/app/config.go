package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"ising-ca/internal/control"
	"ising-ca/internal/sims/ising"
)

// Front-end names accepted by -ui.
const (
	UITerminal = "tui"
	UIPlain    = "plain"
	UIGUI      = "gui"
	UIHeadless = "headless"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Temp     float64
	Steps    float64
	Delay    float64
	Fraction float64
	Seed     int64

	Algorithm string
	UI        string
	ShowInfo  bool
	Ticks     int
	Scale     int

	Dump       string
	DumpFormat string
	Load       string

	LogLevel string
	LogFile  string
}

// NewConfig returns a Config populated with the defaults of the original
// simulator.
func NewConfig() *Config {
	return &Config{
		Temp:       1.0,
		Steps:      1000,
		Delay:      200,
		Fraction:   0.5,
		Algorithm:  "metropolis",
		UI:         UITerminal,
		Scale:      3,
		DumpFormat: "binary",
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "lattice rows (0 = terminal height, or 256)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "lattice columns (0 = terminal width, or 256)")
	fs.Float64Var(&c.Temp, "temp", c.Temp, "initial temperature (> 0)")
	fs.Float64Var(&c.Steps, "steps", c.Steps, "steps per generation")
	fs.Float64Var(&c.Delay, "delay", c.Delay, "delay between generations in ms")
	fs.Float64Var(&c.Fraction, "fraction", c.Fraction, "initial fraction of up spins in [0, 1]")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "update algorithm: metropolis or wolff")
	fs.StringVar(&c.UI, "ui", c.UI, "front-end: tui, plain, gui or headless")
	fs.BoolVar(&c.ShowInfo, "info", c.ShowInfo, "show the status line from the start")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "stop after this many generations (0 = until quit)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the gui")
	fs.StringVar(&c.Dump, "dump", c.Dump, "write the final lattice to this file")
	fs.StringVar(&c.DumpFormat, "dump-format", c.DumpFormat, "state dump format: binary or text")
	fs.StringVar(&c.Load, "load", c.Load, "start from a state dump instead of a random lattice")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file instead of stderr")
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows < 0 || c.Cols < 0 {
		errs = append(errs, fmt.Errorf("lattice %dx%d: dimensions must not be negative", c.Rows, c.Cols))
	}
	if !ising.ValidTemperature(c.Temp) {
		errs = append(errs, fmt.Errorf("temperature %v: %w", c.Temp, ising.ErrTemperature))
	}
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps %v must not be negative", c.Steps))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay %v must not be negative", c.Delay))
	}
	if c.Fraction < 0 || c.Fraction > 1 {
		errs = append(errs, fmt.Errorf("fraction %v outside [0, 1]", c.Fraction))
	}
	if _, ok := control.ParseAlgorithm(c.Algorithm); !ok {
		errs = append(errs, fmt.Errorf("unknown algorithm %q", c.Algorithm))
	}
	switch c.UI {
	case UITerminal, UIPlain, UIGUI, UIHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown ui %q", c.UI))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if _, err := ising.ParseFormat(c.DumpFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", c.LogLevel, err))
	}
	return errors.Join(errs...)
}

// WorldConfig converts the flags into an Ising world configuration for a
// rows x cols lattice.
func (c *Config) WorldConfig(rows, cols int) ising.Config {
	wc := ising.DefaultConfig()
	wc.Rows = rows
	wc.Cols = cols
	wc.Seed = c.Seed
	wc.Params.Temperature = c.Temp
	wc.Params.Fraction = c.Fraction
	return wc
}

// ControllerOptions converts the flags into initial controller options.
func (c *Config) ControllerOptions(logger *log.Logger) control.Options {
	alg, _ := control.ParseAlgorithm(c.Algorithm)
	return control.Options{
		Algorithm: alg,
		Delay:     c.Delay,
		Steps:     c.Steps,
		ShowInfo:  c.ShowInfo,
		Logger:    logger,
	}
}
