package ising

import (
	"strconv"

	"ising-ca/internal/core"
)

// Parameters reports the lattice and physical parameters of the world.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("rows", "Rows", w.cfg.Rows),
				intParam("cols", "Columns", w.cfg.Cols),
				int64Param("seed", "Seed", w.cfg.Seed),
				floatParam("fraction", "Initial up fraction", w.cfg.Params.Fraction),
			},
		},
		{
			Name: "Thermodynamics",
			Params: []core.Parameter{
				floatParam("temp", "Temperature", w.Temperature()),
				floatParam("beta", "Inverse temperature", w.beta),
				floatParam("magnetization", "Magnetization", w.Magnetization()),
				floatParam("energy", "Energy per site", w.Energy()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
