package ising

import "testing"

func measureConfig(temp float64) Config {
	cfg := DefaultConfig()
	cfg.Rows = 16
	cfg.Cols = 16
	cfg.Seed = 8
	cfg.Params.Temperature = temp
	cfg.Params.Fraction = 1
	return cfg
}

func TestMeasureOrderedPhase(t *testing.T) {
	m, err := Measure(measureConfig(1.0), MeasureOptions{Wolff: true, Equil: 20, Samples: 50})
	if err != nil {
		t.Fatal(err)
	}
	if m.Summary.Samples != 50 {
		t.Fatalf("samples = %d", m.Summary.Samples)
	}
	if m.Summary.AbsMagnetization < 0.95 {
		t.Fatalf("<|m|> = %v at T=1, want near 1", m.Summary.AbsMagnetization)
	}
	if m.Acceptance != 1 {
		t.Fatalf("Wolff acceptance = %v, want 1", m.Acceptance)
	}
}

func TestMeasureDisorderedPhase(t *testing.T) {
	m, err := Measure(measureConfig(10), MeasureOptions{Equil: 50, Samples: 100})
	if err != nil {
		t.Fatal(err)
	}
	if m.Summary.AbsMagnetization > 0.3 {
		t.Fatalf("<|m|> = %v at T=10, want near 0", m.Summary.AbsMagnetization)
	}
	if m.Acceptance < 0.5 {
		t.Fatalf("Metropolis acceptance = %v at T=10", m.Acceptance)
	}
}

func TestMeasureRejectsInvalidConfig(t *testing.T) {
	cfg := measureConfig(-1)
	if _, err := Measure(cfg, MeasureOptions{Samples: 1}); err == nil {
		t.Fatal("expected error")
	}
}
