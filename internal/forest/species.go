package forest

// Soil enumerates the immutable soil type of a tile.
type Soil uint8

const (
	SoilStony Soil = iota
	SoilNormal
)

// Cover enumerates the ground-cover layer values.
type Cover uint8

const (
	CoverGrass Cover = iota
	CoverDirt
)

// Species tags a tree with its biology table.
type Species uint8

const (
	SpeciesAsh Species = iota
	SpeciesFir
	SpeciesCottonwood

	speciesCount // sentinel
)

// String returns the display name of the species.
func (s Species) String() string {
	switch s {
	case SpeciesAsh:
		return "ash"
	case SpeciesFir:
		return "fir"
	case SpeciesCottonwood:
		return "cottonwood"
	default:
		return "unknown"
	}
}

// SeedRate describes a uniform seed-timer distribution: timers are redrawn
// from [Average-Variation, Average+Variation] seconds.
type SeedRate struct {
	Average   float64
	Variation float64
}

// SeedRadius returns the (min, max) distance in tile units at which the
// species drops seeds around a parent.
func (s Species) SeedRadius() (float64, float64) {
	switch s {
	case SpeciesAsh:
		return 0.4, 4.5
	case SpeciesFir:
		return 0.3, 1.5
	default: // cottonwood
		return 0.6, 6.0
	}
}

// SeedSuccessRate returns the seed-timer distribution for the species.
func (s Species) SeedSuccessRate() SeedRate {
	switch s {
	case SpeciesAsh:
		return SeedRate{Average: 4.0, Variation: 1.0}
	case SpeciesFir:
		return SeedRate{Average: 3.0, Variation: 1.0}
	default: // cottonwood
		return SeedRate{Average: 16.0, Variation: 3.0}
	}
}

// SoilPreference returns the soil type the species grows best in.
func (s Species) SoilPreference() Soil {
	if s == SpeciesFir {
		return SoilStony
	}
	return SoilNormal
}

// ShadowRadius returns how far a tree of this species and stage casts
// shade, in tile units. Stages without a canopy return 0.
func (s Species) ShadowRadius(stage GrowthStage) float64 {
	switch s {
	case SpeciesAsh:
		switch stage {
		case StageSapling:
			return 0.55
		case StageMature:
			return 0.9
		case StageOld:
			return 0.8
		case StageDecline:
			return 0.55
		}
	case SpeciesFir:
		switch stage {
		case StageSeedling:
			return 0.25
		case StageSapling:
			return 0.55
		case StageMature:
			return 0.7
		case StageOld:
			return 0.65
		case StageDecline:
			return 0.55
		}
	case SpeciesCottonwood:
		switch stage {
		case StageSeedling:
			return 0.25
		case StageSapling:
			return 0.7
		case StageMature:
			return 0.9
		case StageOld:
			return 0.9
		case StageDecline:
			return 0.8
		}
	}
	return 0
}

// GrowthRequired returns the growth points needed to leave the given stage.
// The terminal Stump stage has no requirement and reports ok=false.
func (s Species) GrowthRequired(stage GrowthStage) (float64, bool) {
	if stage == StageStump {
		return 0, false
	}
	switch s {
	case SpeciesAsh:
		return [...]float64{1, 5, 20, 45, 40, 20, 10}[stage], true
	case SpeciesFir:
		return [...]float64{5, 15, 20, 60, 60, 20, 10}[stage], true
	default: // cottonwood
		return [...]float64{2, 3, 10, 80, 75, 30, 15}[stage], true
	}
}
