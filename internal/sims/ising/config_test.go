package ising

import (
	"math"
	"testing"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rows":     "12",
		"cols":     "34",
		"seed":     "-5",
		"temp":     "2.5",
		"fraction": "0.25",
	})
	if cfg.Rows != 12 || cfg.Cols != 34 || cfg.Seed != -5 {
		t.Fatalf("dimensions/seed = %dx%d/%d", cfg.Rows, cfg.Cols, cfg.Seed)
	}
	if cfg.Params.Temperature != 2.5 || cfg.Params.Fraction != 0.25 {
		t.Fatalf("params = %+v", cfg.Params)
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"rows":     "-3",
		"cols":     "abc",
		"temp":     "0",
		"fraction": "2",
	})
	if cfg != def {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map must yield defaults")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Rows = -1
	cfg.Params.Temperature = -2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidTemperature(t *testing.T) {
	for _, ok := range []float64{1e-300, 0.5, 2.269, 1e300} {
		if !ValidTemperature(ok) {
			t.Fatalf("ValidTemperature(%v) = false", ok)
		}
	}
	for _, bad := range []float64{0, -1, 5e-324, 1e-310, math.Inf(1), math.NaN()} {
		if ValidTemperature(bad) {
			t.Fatalf("ValidTemperature(%v) = true", bad)
		}
	}
}
