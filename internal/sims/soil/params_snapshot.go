package soil

import (
	"math"
	"strconv"

	"soilsim/internal/core"
)

// Parameters reports every tunable grouped for display.
func (s *Sim) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name: "Grid",
		Params: []core.Parameter{
			intParam("grid_size", "Cells per axis", s.cfg.GridSize),
			floatParam("cell_size", "Cell size", s.cfg.CellSize),
			int64Param("seed", "Seed", s.cfg.Seed),
			intParam("tick_rate", "Tick rate", s.cfg.TickRate),
		},
	}}
	index := map[string]int{}
	for _, spec := range paramSpecs {
		gi, ok := index[spec.group]
		if !ok {
			groups = append(groups, core.ParameterGroup{Name: spec.group})
			gi = len(groups) - 1
			index[spec.group] = gi
		}
		p := floatParam(spec.key, spec.label, *spec.ref(&s.cfg.Params))
		groups[gi].Params = append(groups[gi].Params, p)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rate constants adjustable at runtime.
func (s *Sim) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(paramSpecs))
	for _, spec := range paramSpecs {
		if spec.key == "noise_scale" {
			continue
		}
		controls = append(controls, core.ParameterControl{
			Key:   spec.key,
			Label: spec.label,
			Step:  spec.step,
			Min:   spec.min,
			Max:   spec.max,
		})
	}
	return controls
}

// SetFloatParameter updates a rate constant, clamping it into range. It
// reports false for unknown keys and NaN values.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	spec, ok := lookupParam(key)
	if !ok || math.IsNaN(value) {
		return false
	}
	value = math.Max(spec.min, math.Min(spec.max, value))
	*spec.ref(&s.cfg.Params) = value
	return true
}

// Telemetry reports the aggregate readings shown by HUDs and runners.
func (s *Sim) Telemetry() []core.Reading {
	m := s.Stats(Moisture)
	n := s.Stats(Nitrogen)
	return []core.Reading{
		{Label: "Total moisture", Value: float64(m.Total)},
		{Label: "Mean moisture", Value: float64(m.Mean)},
		{Label: "Total nitrogen", Value: float64(n.Total)},
		{Label: "Mean nitrogen", Value: float64(n.Mean)},
		{Label: "Rain", Value: float64(s.lastRain)},
		{Label: "Tick", Value: float64(s.ticks)},
	}
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
