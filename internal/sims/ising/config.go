package ising

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Params holds the physical and initial-state parameters of a run.
type Params struct {
	Temperature float64
	Fraction    float64
}

// Config controls the Ising world dimensions, seed and parameters.
type Config struct {
	Rows int
	Cols int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows: 256,
		Cols: 256,
		Seed: 0,
		Params: Params{
			Temperature: 1.0,
			Fraction:    0.5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["temp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && ValidTemperature(parsed) {
			c.Params.Temperature = parsed
		}
	}
	if v, ok := cfg["fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Fraction = parsed
		}
	}
	return c
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("lattice %dx%d: dimensions must be positive", c.Rows, c.Cols))
	}
	if !ValidTemperature(c.Params.Temperature) {
		errs = append(errs, fmt.Errorf("temperature %v: %w", c.Params.Temperature, ErrTemperature))
	}
	if math.IsNaN(c.Params.Fraction) || c.Params.Fraction < 0 || c.Params.Fraction > 1 {
		errs = append(errs, fmt.Errorf("initial up fraction %v outside [0, 1]", c.Params.Fraction))
	}
	return errors.Join(errs...)
}

// ValidTemperature reports whether t is finite and positive with a finite
// inverse. Subnormal temperatures fail: 1/t overflows to +Inf.
func ValidTemperature(t float64) bool {
	if !(t > 0) || math.IsInf(t, 0) {
		return false
	}
	return !math.IsInf(1/t, 0)
}
