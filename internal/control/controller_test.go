package control

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine accepts every other Metropolis trial.
type fakeEngine struct {
	temp       float64
	mag        float64
	metroCalls []int
	wolffCalls []int
}

func (e *fakeEngine) Metropolis(n int) int {
	e.metroCalls = append(e.metroCalls, n)
	return n / 2
}

func (e *fakeEngine) Wolff(n int) int {
	e.wolffCalls = append(e.wolffCalls, n)
	return n
}

func (e *fakeEngine) Temperature() float64 { return e.temp }

func (e *fakeEngine) SetTemperature(t float64) error {
	if t <= 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		return errors.New("bad temperature")
	}
	e.temp = t
	return nil
}

func (e *fakeEngine) Magnetization() float64 { return e.mag }

func newTestController(opts Options) (*Controller, *fakeEngine) {
	eng := &fakeEngine{temp: 1, mag: 0.5}
	return New(eng, opts), eng
}

func TestTemperatureEventsScaleAndReset(t *testing.T) {
	c, eng := newTestController(Options{Steps: 10})
	c.Tick()
	steps, accepted := c.Counters()
	require.Equal(t, 10, steps)
	require.Equal(t, 5, accepted)

	require.True(t, c.Apply(Hotter))
	assert.InDelta(t, 1.1, eng.temp, 1e-12)
	steps, accepted = c.Counters()
	assert.Zero(t, steps)
	assert.Zero(t, accepted)

	c.Tick()
	require.True(t, c.Apply(Colder))
	assert.InDelta(t, 1.0, eng.temp, 1e-12)
	steps, _ = c.Counters()
	assert.Zero(t, steps)
}

func TestRejectedTemperatureStillResetsCounters(t *testing.T) {
	c, eng := newTestController(Options{Steps: 10})
	eng.temp = math.MaxFloat64
	c.Tick()
	c.Apply(Hotter)
	assert.Equal(t, math.MaxFloat64, eng.temp)
	steps, _ := c.Counters()
	assert.Zero(t, steps)
}

func TestDelayEvents(t *testing.T) {
	c, _ := newTestController(Options{Delay: 12, Steps: 1})
	c.Apply(Faster)
	assert.Equal(t, 2, c.DelayMillis())
	c.Apply(Faster)
	c.Apply(Faster)
	assert.Equal(t, 0, c.DelayMillis())
	c.Apply(Faster)
	assert.Equal(t, 0, c.DelayMillis(), "delay must not go negative")

	for i := 0; i < 10; i++ {
		c.Apply(Slower)
	}
	assert.Equal(t, 10, c.DelayMillis())
	c.Apply(Slower)
	assert.Equal(t, 20, c.DelayMillis())

	for i := 0; i < 100; i++ {
		c.Apply(Slower)
	}
	assert.Equal(t, int(MaxDelay), c.DelayMillis())
}

func TestDelayRounding(t *testing.T) {
	c, _ := newTestController(Options{Delay: 2.5, Steps: 1})
	assert.Equal(t, 2, c.DelayMillis())
	c, _ = newTestController(Options{Delay: 2.6, Steps: 1})
	assert.Equal(t, 3, c.DelayMillis())
	c, _ = newTestController(Options{Delay: -4, Steps: 1})
	assert.Equal(t, 0, c.DelayMillis())
}

func TestStepEventsFollowLadder(t *testing.T) {
	c, _ := newTestController(Options{Steps: 1})
	var seen []int
	for i := 0; i < 6; i++ {
		c.Apply(MoreSteps)
		seen = append(seen, c.EffectiveSteps())
	}
	assert.Equal(t, []int{2, 5, 10, 20, 50, 100}, seen)

	seen = seen[:0]
	for i := 0; i < 8; i++ {
		c.Apply(LessSteps)
		seen = append(seen, c.EffectiveSteps())
	}
	assert.Equal(t, []int{50, 20, 10, 5, 2, 1, 1, 1}, seen)
}

func TestWolffEffectiveSteps(t *testing.T) {
	c, eng := newTestController(Options{Algorithm: Wolff, Steps: 10})
	assert.Equal(t, WolffScale, c.Steps(), "Wolff steps are clamped to one sweep")
	assert.Empty(t, eng.wolffCalls)
	assert.Equal(t, 1, c.EffectiveSteps())

	c.Apply(MoreSteps)
	assert.Equal(t, 2, c.EffectiveSteps())
	c.Apply(LessSteps)
	c.Apply(LessSteps)
	assert.Equal(t, WolffScale, c.Steps())

	c, eng = newTestController(Options{Algorithm: Wolff, Steps: 2500})
	assert.Equal(t, 3, c.EffectiveSteps())
	c.Tick()
	assert.Equal(t, []int{3}, eng.wolffCalls)
	assert.Empty(t, eng.metroCalls)
}

func TestSwitchAlgorithm(t *testing.T) {
	c, eng := newTestController(Options{Steps: 5})
	c.Tick()
	require.Equal(t, Metropolis, c.Algorithm())

	c.Apply(SwitchAlgorithm)
	assert.Equal(t, Wolff, c.Algorithm())
	assert.Equal(t, WolffScale, c.Steps())
	steps, _ := c.Counters()
	assert.Zero(t, steps)

	c.Tick()
	assert.Equal(t, []int{1}, eng.wolffCalls)

	c.Apply(SwitchAlgorithm)
	assert.Equal(t, Metropolis, c.Algorithm())
	assert.Equal(t, 1000, c.EffectiveSteps())
}

func TestManualWolff(t *testing.T) {
	c, eng := newTestController(Options{Steps: 4})
	c.Tick()
	c.Apply(ManualWolff)
	assert.Equal(t, []int{1}, eng.wolffCalls)
	steps, accepted := c.Counters()
	assert.Zero(t, steps)
	assert.Zero(t, accepted)
	assert.Len(t, c.History(), 2)
}

func TestAcceptanceRate(t *testing.T) {
	c, _ := newTestController(Options{Steps: 4})
	assert.Equal(t, 1.0, c.AcceptanceRate())
	c.Tick()
	c.Tick()
	assert.InDelta(t, 0.5, c.AcceptanceRate(), 1e-12)
}

func TestQuitAndToggle(t *testing.T) {
	c, _ := newTestController(Options{Steps: 1, ShowInfo: true})
	assert.NotEmpty(t, c.Status())
	c.Apply(ToggleInfo)
	assert.False(t, c.ShowInfo())
	assert.Empty(t, c.Status())
	assert.False(t, c.Apply(Quit))
	assert.True(t, c.Apply(Event(99)))
}

func TestStatusFormat(t *testing.T) {
	c, eng := newTestController(Options{Delay: 200, Steps: 1000, ShowInfo: true})
	eng.temp = 2.269
	eng.mag = -0.25
	want := "  Algorithm: Metropolis  Temperature: 2.269000  Magnetization: -0.250" +
		"  Delay: 200 ms  Steps per generation: 1000  Acceptance: 1.000000  Commands: hcfsmliwaq  "
	assert.Equal(t, want, c.Status())

	eng.mag = 0.5
	assert.Contains(t, c.Status(), "Magnetization:  0.500")
}

func TestHistoryIsBounded(t *testing.T) {
	c, eng := newTestController(Options{Steps: 1})
	for i := 0; i < HistoryCap+10; i++ {
		eng.mag = float64(i)
		c.Tick()
	}
	h := c.History()
	require.Len(t, h, HistoryCap)
	assert.Equal(t, 10.0, h[0])
	assert.Equal(t, float64(HistoryCap+9), h[len(h)-1])
}

func TestAdjustParameter(t *testing.T) {
	c, eng := newTestController(Options{Delay: 20, Steps: 1})
	assert.True(t, c.AdjustParameter("temp", 1))
	assert.InDelta(t, 1.1, eng.temp, 1e-12)
	assert.True(t, c.AdjustParameter("delay", -1))
	assert.Equal(t, 10, c.DelayMillis())
	assert.True(t, c.AdjustParameter("steps", 1))
	assert.Equal(t, 2, c.EffectiveSteps())
	assert.True(t, c.AdjustParameter("steps", 0))
	assert.Equal(t, 2, c.EffectiveSteps())
	assert.False(t, c.AdjustParameter("bogus", 1))

	p, ok := c.Parameters().Lookup("algorithm")
	require.True(t, ok)
	assert.Equal(t, "Metropolis", p.Value)
	assert.Len(t, c.ParameterControls(), 3)
}
