package app

import (
	"context"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising-ca/internal/control"
	"ising-ca/internal/sims/ising"
)

func quietLogger() *log.Logger { return log.New(io.Discard) }

func headlessConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-ui", "headless", "-rows", "8", "-cols", "12", "-temp", "2.2",
		"-steps", "50", "-delay", "0", "-ticks", "5", "-seed", "3",
	}))
	return cfg
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, NewConfig().Validate())

	cfg := NewConfig()
	cfg.Temp = 0
	cfg.Algorithm = "heatbath"
	cfg.UI = "web"
	cfg.Fraction = 2
	cfg.DumpFormat = "yaml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ising.ErrTemperature)
	for _, fragment := range []string{"heatbath", "web", "fraction", "yaml"} {
		assert.Contains(t, err.Error(), fragment)
	}
}

func TestConfigRejectsNonInvertibleTemperature(t *testing.T) {
	for _, temp := range []float64{math.Inf(1), 1e-310, math.NaN()} {
		cfg := NewConfig()
		cfg.Temp = temp
		assert.ErrorIs(t, cfg.Validate(), ising.ErrTemperature, "temp %v", temp)
	}
}

func TestControllerOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Algorithm = "Wolff"
	opts := cfg.ControllerOptions(nil)
	assert.Equal(t, control.Wolff, opts.Algorithm)
	assert.Equal(t, 1000.0, opts.Steps)
	assert.Equal(t, 200.0, opts.Delay)
}

func TestHeadlessSessionDumpsState(t *testing.T) {
	cfg := headlessConfig(t)
	cfg.Dump = filepath.Join(t.TempDir(), "state.txt")
	cfg.DumpFormat = "text"

	s, err := NewSession(cfg, quietLogger())
	require.NoError(t, err)
	require.Equal(t, 8, s.World.Lattice().Rows())
	require.Equal(t, 12, s.World.Lattice().Cols())
	require.NoError(t, s.Run(context.Background()))

	steps, _ := s.Controller.Counters()
	assert.Equal(t, 5*50, steps)

	f, err := os.Open(cfg.Dump)
	require.NoError(t, err)
	defer f.Close()
	lat, err := ising.ReadState(f)
	require.NoError(t, err)
	assert.True(t, slices.Equal(lat.Spins(), s.World.Lattice().Spins()))
}

func TestSessionLoadsState(t *testing.T) {
	first := headlessConfig(t)
	first.Dump = filepath.Join(t.TempDir(), "state.bin")
	s, err := NewSession(first, quietLogger())
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	second := headlessConfig(t)
	second.Rows, second.Cols = 0, 0
	second.Ticks = 0
	second.Load = first.Dump
	loaded, err := NewSession(second, quietLogger())
	require.NoError(t, err)
	assert.True(t, slices.Equal(s.World.Lattice().Spins(), loaded.World.Lattice().Spins()))
}

func TestSessionRejectsBadLoad(t *testing.T) {
	cfg := headlessConfig(t)
	cfg.Load = filepath.Join(t.TempDir(), "missing.bin")
	_, err := NewSession(cfg, quietLogger())
	assert.Error(t, err)
}

func TestHeadlessSessionStopsOnCancel(t *testing.T) {
	cfg := headlessConfig(t)
	cfg.Ticks = 0
	s, err := NewSession(cfg, quietLogger())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.Run(ctx))
}

func TestNewLoggerWritesFile(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")
	logger, closeFn, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("hello", "k", 1)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "ising")
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "loud"
	_, _, err := NewLogger(cfg)
	assert.Error(t, err)
}
