package forest

import (
	"math"
	"testing"
)

func testPosition(x, y int) WorldPosition {
	return WorldPosition{Coord: TileCoord{X: x, Y: y}, Offset: Vec2{X: 0.5, Y: 0.5}}
}

func TestNewTreeDefaults(t *testing.T) {
	tree := NewTree(SpeciesAsh, testPosition(3, 4))

	if tree.Stage != StageSprout {
		t.Fatalf("new tree should be a sprout, got %v", tree.Stage)
	}
	if tree.GrowthSpeed != 1.0 || tree.ShadeFactor != 1.0 || tree.SeedTimer != 1.0 {
		t.Fatalf("unexpected defaults: speed=%f shade=%f timer=%f",
			tree.GrowthSpeed, tree.ShadeFactor, tree.SeedTimer)
	}
	if !tree.HasGrowthTarget || tree.GrowthTarget != 1 {
		t.Fatalf("ash sprout should target 1 growth point, got %f (has=%t)",
			tree.GrowthTarget, tree.HasGrowthTarget)
	}
	if !tree.Alive() {
		t.Fatal("new tree should be alive")
	}
}

func TestGrowAdvancesPastTarget(t *testing.T) {
	tree := NewTree(SpeciesAsh, testPosition(0, 0))

	// Reaching the target exactly is not enough; the threshold is strict.
	if got := tree.Grow(1.0); got != StageSprout {
		t.Fatalf("growth equal to target must not advance, got %v", got)
	}
	if got := tree.Grow(0.001); got != StageSeedling {
		t.Fatalf("growth past target should advance, got %v", got)
	}
	// Targets are cumulative: seedling needs 5 more, so 6 total.
	if tree.GrowthTarget != 6 {
		t.Fatalf("expected cumulative target 6, got %f", tree.GrowthTarget)
	}
}

func TestGrowWalksAllStages(t *testing.T) {
	tree := NewTree(SpeciesFir, testPosition(0, 0))

	want := []GrowthStage{
		StageSeedling, StageSapling, StageMature,
		StageOld, StageDecline, StageSnag, StageStump,
	}
	for _, expected := range want {
		// One large step always clears the next cumulative target.
		if got := tree.Grow(200); got != expected {
			t.Fatalf("expected stage %v, got %v", expected, got)
		}
	}

	if tree.HasGrowthTarget {
		t.Fatal("stump should have no further target")
	}
	if got := tree.Grow(200); got != StageStump {
		t.Fatalf("stump must be terminal, got %v", got)
	}
	if tree.Alive() {
		t.Fatal("stump should not be alive")
	}
}

func TestSeedTimerRunsOnlyInSeedingStages(t *testing.T) {
	tree := NewTree(SpeciesAsh, testPosition(0, 0))

	before := tree.SeedTimer
	tree.Grow(0.5) // still a sprout
	if tree.SeedTimer != before {
		t.Fatalf("sprout should not run the seed timer, got %f", tree.SeedTimer)
	}

	tree.Stage = StageMature
	tree.GrowthTarget = math.MaxFloat64
	tree.Grow(0.25)
	if math.Abs(tree.SeedTimer-(before-0.25)) > 1e-12 {
		t.Fatalf("mature tree should run the seed timer, got %f", tree.SeedTimer)
	}

	tree.Stage = StageSnag
	timer := tree.SeedTimer
	tree.Grow(0.25)
	if tree.SeedTimer != timer {
		t.Fatalf("snag should not run the seed timer, got %f", tree.SeedTimer)
	}
}

func TestGrowScalesWithSpeed(t *testing.T) {
	tree := NewTree(SpeciesCottonwood, testPosition(0, 0))
	tree.GrowthSpeed = 0.5

	tree.Grow(2)
	if tree.Growth != 1 {
		t.Fatalf("expected growth 1 at half speed, got %f", tree.Growth)
	}
}

func TestAliveBoundary(t *testing.T) {
	tree := NewTree(SpeciesAsh, testPosition(0, 0))
	for stage := StageSprout; stage <= StageDecline; stage++ {
		tree.Stage = stage
		if !tree.Alive() {
			t.Fatalf("stage %v should be alive", stage)
		}
	}
	for _, stage := range []GrowthStage{StageSnag, StageStump} {
		tree.Stage = stage
		if tree.Alive() {
			t.Fatalf("stage %v should be dead", stage)
		}
	}
}
