package forest

import "testing"

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":                "202",
		"soil_penalty":        "0.25",
		"seed_trials":         "5",
		"stump_removal_denom": "100",
	})

	if cfg.Seed != 202 {
		t.Fatalf("expected seed 202, got %d", cfg.Seed)
	}
	if cfg.Params.SoilPenalty != 0.25 {
		t.Fatalf("expected soil penalty 0.25, got %f", cfg.Params.SoilPenalty)
	}
	if cfg.Params.SeedTrials != 5 {
		t.Fatalf("expected 5 seed trials, got %d", cfg.Params.SeedTrials)
	}
	if cfg.Params.StumpRemovalDenom != 100 {
		t.Fatalf("expected denominator 100, got %d", cfg.Params.StumpRemovalDenom)
	}
	// Untouched keys keep their defaults.
	if want := DefaultConfig().Params.MinViability; cfg.Params.MinViability != want {
		t.Fatalf("expected default min viability %f, got %f", want, cfg.Params.MinViability)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"seed":         "not-a-number",
		"soil_penalty": "-2",
		"seed_trials":  "x",
	})

	if cfg.Seed != def.Seed {
		t.Fatalf("invalid seed should keep default, got %d", cfg.Seed)
	}
	if cfg.Params.SoilPenalty != def.Params.SoilPenalty {
		t.Fatalf("invalid penalty should keep default, got %f", cfg.Params.SoilPenalty)
	}
	if cfg.Params.SeedTrials != def.Params.SeedTrials {
		t.Fatalf("invalid trials should keep default, got %d", cfg.Params.SeedTrials)
	}
}
