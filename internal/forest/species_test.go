package forest

import "testing"

func TestSoilPreference(t *testing.T) {
	if got := SpeciesFir.SoilPreference(); got != SoilStony {
		t.Fatalf("fir should prefer stony soil, got %v", got)
	}
	if got := SpeciesAsh.SoilPreference(); got != SoilNormal {
		t.Fatalf("ash should prefer normal soil, got %v", got)
	}
	if got := SpeciesCottonwood.SoilPreference(); got != SoilNormal {
		t.Fatalf("cottonwood should prefer normal soil, got %v", got)
	}
}

func TestShadowRadiusCanopyStagesOnly(t *testing.T) {
	for _, species := range []Species{SpeciesAsh, SpeciesFir, SpeciesCottonwood} {
		for _, stage := range []GrowthStage{StageSprout, StageSnag, StageStump} {
			if r := species.ShadowRadius(stage); r != 0 {
				t.Fatalf("%v at %v should cast no shade, got %f", species, stage, r)
			}
		}
		for _, stage := range []GrowthStage{StageSapling, StageMature, StageOld, StageDecline} {
			if r := species.ShadowRadius(stage); r <= 0 {
				t.Fatalf("%v at %v should cast shade, got %f", species, stage, r)
			}
		}
	}

	// Ash seedlings are shadeless; the conifers already shade a little.
	if r := SpeciesAsh.ShadowRadius(StageSeedling); r != 0 {
		t.Fatalf("ash seedling should cast no shade, got %f", r)
	}
	if r := SpeciesFir.ShadowRadius(StageSeedling); r != 0.25 {
		t.Fatalf("fir seedling should shade 0.25, got %f", r)
	}
}

func TestShadowRadiusPeaksAtMaturity(t *testing.T) {
	for _, species := range []Species{SpeciesAsh, SpeciesFir, SpeciesCottonwood} {
		mature := species.ShadowRadius(StageMature)
		for _, stage := range []GrowthStage{StageSeedling, StageSapling, StageDecline} {
			if r := species.ShadowRadius(stage); r > mature {
				t.Fatalf("%v shadow at %v (%f) exceeds mature (%f)", species, stage, r, mature)
			}
		}
	}
}

func TestGrowthRequiredPerStage(t *testing.T) {
	cases := []struct {
		species Species
		stage   GrowthStage
		want    float64
	}{
		{SpeciesAsh, StageSprout, 1},
		{SpeciesAsh, StageMature, 45},
		{SpeciesAsh, StageSnag, 10},
		{SpeciesFir, StageSprout, 5},
		{SpeciesFir, StageOld, 60},
		{SpeciesCottonwood, StageSeedling, 3},
		{SpeciesCottonwood, StageDecline, 30},
	}
	for _, c := range cases {
		got, ok := c.species.GrowthRequired(c.stage)
		if !ok {
			t.Fatalf("%v %v should have a requirement", c.species, c.stage)
		}
		if got != c.want {
			t.Fatalf("%v %v requirement: want %f got %f", c.species, c.stage, c.want, got)
		}
	}

	for _, species := range []Species{SpeciesAsh, SpeciesFir, SpeciesCottonwood} {
		if _, ok := species.GrowthRequired(StageStump); ok {
			t.Fatalf("%v stump should be terminal", species)
		}
	}
}

func TestSeedRadiusOrdering(t *testing.T) {
	for _, species := range []Species{SpeciesAsh, SpeciesFir, SpeciesCottonwood} {
		min, max := species.SeedRadius()
		if min <= 0 || max <= min {
			t.Fatalf("%v seed radius range invalid: [%f,%f]", species, min, max)
		}
	}

	// Cottonwood seeds travel farthest, fir the shortest.
	_, ashMax := SpeciesAsh.SeedRadius()
	_, firMax := SpeciesFir.SeedRadius()
	_, cwMax := SpeciesCottonwood.SeedRadius()
	if !(firMax < ashMax && ashMax < cwMax) {
		t.Fatalf("unexpected seed reach ordering: fir=%f ash=%f cottonwood=%f", firMax, ashMax, cwMax)
	}
}

func TestSeedSuccessRatePositive(t *testing.T) {
	for _, species := range []Species{SpeciesAsh, SpeciesFir, SpeciesCottonwood} {
		rate := species.SeedSuccessRate()
		if rate.Average <= rate.Variation {
			t.Fatalf("%v seed timer could go non-positive: avg=%f var=%f", species, rate.Average, rate.Variation)
		}
	}
}
