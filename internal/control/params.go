package control

import (
	"strconv"

	"ising-ca/internal/core"
)

// Parameters reports the live interaction state.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "algorithm", Label: "Algorithm", Type: core.ParamTypeString, Value: c.algorithm.String()},
			{Key: "temp", Label: "Temperature", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.engine.Temperature(), 'f', 6, 64)},
			{Key: "delay", Label: "Delay (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(c.DelayMillis())},
			{Key: "steps", Label: "Steps / generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.EffectiveSteps())},
			{Key: "acceptance", Label: "Acceptance", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.AcceptanceRate(), 'f', 6, 64)},
			{Key: "magnetization", Label: "Magnetization", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.engine.Magnetization(), 'f', 3, 64)},
		},
	}}}
}

// ParameterControls lists the parameters the HUD may nudge.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "temp", Label: "Temperature", Type: core.ParamTypeFloat},
		{Key: "delay", Label: "Delay (ms)", Type: core.ParamTypeInt},
		{Key: "steps", Label: "Steps / generation", Type: core.ParamTypeInt},
	}
}

// AdjustParameter routes a HUD nudge through the same events the keyboard
// produces, so counter resets behave identically.
func (c *Controller) AdjustParameter(key string, direction int) bool {
	var up, down Event
	switch key {
	case "temp":
		up, down = Hotter, Colder
	case "delay":
		up, down = Slower, Faster
	case "steps":
		up, down = MoreSteps, LessSteps
	default:
		return false
	}
	switch {
	case direction > 0:
		c.Apply(up)
	case direction < 0:
		c.Apply(down)
	}
	return true
}
