package forest

// GrowthStage is the ordered life-cycle phase of a tree. Stages only ever
// advance; Stump is terminal and loops on itself. Snag and Stump are the
// decay stages of a dead tree.
type GrowthStage uint8

const (
	StageSprout GrowthStage = iota
	StageSeedling
	StageSapling
	StageMature
	StageOld
	StageDecline
	StageSnag
	StageStump

	stageCount // sentinel
)

// Next returns the stage that follows, with Stump looping on itself.
func (g GrowthStage) Next() GrowthStage {
	if g >= StageStump {
		return StageStump
	}
	return g + 1
}

// String returns the display name of the stage.
func (g GrowthStage) String() string {
	switch g {
	case StageSprout:
		return "sprout"
	case StageSeedling:
		return "seedling"
	case StageSapling:
		return "sapling"
	case StageMature:
		return "mature"
	case StageOld:
		return "old"
	case StageDecline:
		return "decline"
	case StageSnag:
		return "snag"
	case StageStump:
		return "stump"
	default:
		return "unknown"
	}
}

// Tree is a single tree occupying one slot of a tile bucket. Each tree is
// owned exclusively by its slot and mutated by at most one code path per
// tick.
type Tree struct {
	Position WorldPosition
	Species  Species
	Stage    GrowthStage

	// Growth accumulates lifetime growth points; GrowthTarget is the
	// cumulative total at which the next stage begins. Once the tree is a
	// stump there is no further target.
	Growth          float64
	GrowthSpeed     float64
	GrowthTarget    float64
	HasGrowthTarget bool

	// SeedTimer counts down while the tree is in a seeding stage.
	SeedTimer float64

	// ShadeFactor is the multiplicative light availability in (0,1]:
	// the product of the occlusions of every neighbouring canopy.
	ShadeFactor float64
}

// NewTree returns a sprout of the given species rooted at pos.
func NewTree(species Species, pos WorldPosition) Tree {
	t := Tree{
		Position:    pos,
		Species:     species,
		Stage:       StageSprout,
		GrowthSpeed: 1.0,
		SeedTimer:   1.0,
		ShadeFactor: 1.0,
	}
	t.GrowthTarget, t.HasGrowthTarget = species.GrowthRequired(t.Stage)
	return t
}

// Grow advances the growth accumulator by GrowthSpeed*dt and moves to the
// next stage once the cumulative target is passed. Seeding stages also run
// the seed timer down. Dead trees keep advancing through their decay
// stages at base speed; only the caller applies light/soil modifiers.
// Returns the (possibly unchanged) current stage.
func (t *Tree) Grow(dt float64) GrowthStage {
	if t.HasGrowthTarget {
		t.Growth += t.GrowthSpeed * dt
		if t.Growth > t.GrowthTarget {
			t.Stage = t.Stage.Next()
			if req, ok := t.Species.GrowthRequired(t.Stage); ok {
				t.GrowthTarget += req
			} else {
				t.HasGrowthTarget = false
			}
		}
	}

	switch t.Stage {
	case StageMature, StageOld, StageDecline:
		t.SeedTimer -= dt
	}

	return t.Stage
}

// Alive reports whether the tree has not yet entered its decay stages.
func (t *Tree) Alive() bool {
	return t.Stage < StageSnag
}
