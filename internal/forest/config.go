package forest

import "strconv"

// Params holds the tunable thresholds and probabilities of the forest sim.
// Grid geometry is fixed at compile time; everything here may be adjusted
// between runs (FromMap) or live (the HUD setters).
type Params struct {
	// SoilPenalty multiplies growth when a tree sits on soil it dislikes.
	SoilPenalty float64
	// MinViability kills a living tree whose combined growth multiplier
	// (shade × soil) falls to or below this value.
	MinViability float64

	// SeedTrials is the number of independent seeding attempts a tree
	// makes once its seed timer expires.
	SeedTrials int
	// SeedChanceBase scales seeding odds: each trial succeeds with
	// probability 1/(SeedChanceBase / stage multiplier), doubled again on
	// mismatched soil.
	SeedChanceBase float64

	// StumpRemovalDenom is the N in the per-tick 1/N chance that a fully
	// decayed stump is removed from the world.
	StumpRemovalDenom int

	// InitialTreePairs seeds the world with this many tree pairs, one
	// tree per band row, at reset.
	InitialTreePairs int

	// PanSpeed and ZoomStep drive the simulation-owned camera, both
	// scaled by the current zoom level.
	PanSpeed float64
	ZoomStep float64
}

// Config controls a forest World.
type Config struct {
	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed: 1337,
		Params: Params{
			SoilPenalty:       0.4,
			MinViability:      0.05,
			SeedTrials:        3,
			SeedChanceBase:    10,
			StumpRemovalDenom: 500,
			InitialTreePairs:  10,
			PanSpeed:          0.005,
			ZoomStep:          0.01,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["soil_penalty"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SoilPenalty = parsed
		}
	}
	if v, ok := cfg["min_viability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MinViability = parsed
		}
	}
	if v, ok := cfg["seed_trials"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SeedTrials = parsed
		}
	}
	if v, ok := cfg["seed_chance_base"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.Params.SeedChanceBase = parsed
		}
	}
	if v, ok := cfg["stump_removal_denom"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.StumpRemovalDenom = parsed
		}
	}
	if v, ok := cfg["initial_tree_pairs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InitialTreePairs = parsed
		}
	}
	if v, ok := cfg["pan_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.PanSpeed = parsed
		}
	}
	if v, ok := cfg["zoom_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ZoomStep = parsed
		}
	}
	return c
}
