package forest

import (
	"strconv"

	"canopy/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("initial_tree_pairs", "Initial tree pairs", params.InitialTreePairs),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("soil_penalty", "Soil penalty", params.SoilPenalty),
				floatParam("min_viability", "Min viability", params.MinViability),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("seed_trials", "Seed trials", params.SeedTrials),
				floatParam("seed_chance_base", "Seed chance base", params.SeedChanceBase),
				intParam("stump_removal_denom", "Stump removal denominator", params.StumpRemovalDenom),
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				floatParam("pan_speed", "Pan speed", params.PanSpeed),
				floatParam("zoom_step", "Zoom step", params.ZoomStep),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "soil_penalty", Label: "Soil penalty", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		{
			Key: "min_viability", Label: "Min viability", Type: core.ParamTypeFloat,
			Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		{
			Key: "seed_trials", Label: "Seed trials", Type: core.ParamTypeInt,
			Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true,
		},
		{
			Key: "seed_chance_base", Label: "Seed chance base", Type: core.ParamTypeFloat,
			Step: 1, Min: 1, HasMin: true,
		},
		{
			Key: "stump_removal_denom", Label: "Stump removal denominator", Type: core.ParamTypeInt,
			Step: 50, Min: 1, HasMin: true,
		},
		{
			Key: "initial_tree_pairs", Label: "Initial tree pairs", Type: core.ParamTypeInt,
			Step: 1, Min: 0, Max: GridDim, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter updates an integer tunable. Changes take effect on the
// next tick; initial_tree_pairs only matters at the next Reset.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed_trials":
		if value < 0 {
			return false
		}
		w.cfg.Params.SeedTrials = value
	case "stump_removal_denom":
		if value < 1 {
			return false
		}
		w.cfg.Params.StumpRemovalDenom = value
	case "initial_tree_pairs":
		if value < 0 || value > GridDim {
			return false
		}
		w.cfg.Params.InitialTreePairs = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating-point tunable.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "soil_penalty":
		if value < 0 || value > 1 {
			return false
		}
		w.cfg.Params.SoilPenalty = value
	case "min_viability":
		if value < 0 || value > 1 {
			return false
		}
		w.cfg.Params.MinViability = value
	case "seed_chance_base":
		if value < 1 {
			return false
		}
		w.cfg.Params.SeedChanceBase = value
	case "pan_speed":
		if value <= 0 {
			return false
		}
		w.cfg.Params.PanSpeed = value
	case "zoom_step":
		if value <= 0 {
			return false
		}
		w.cfg.Params.ZoomStep = value
	default:
		return false
	}
	return true
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
