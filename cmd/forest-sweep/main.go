package main

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"canopy/internal/core"
	"canopy/internal/forest"

	"github.com/integrii/flaggy"
)

type paramSet struct {
	seed        int64
	soilPenalty float64
	seedBase    float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("seed=%d penalty=%.2f seedBase=%.0f", p.seed, p.soilPenalty, p.seedBase)
}

type scenarioResult struct {
	params paramSet

	finalTrees  int
	peakTrees   int
	matureFinal int
	deadFinal   int
	grassFinal  int
	avgLight    float64
	dropped     uint64
}

func main() {
	ticks := 3000
	seeds := 8
	workers := runtime.NumCPU()

	flaggy.SetName("forest-sweep")
	flaggy.SetDescription("headless parameter sweep over forest scenarios")
	flaggy.Int(&ticks, "t", "ticks", "ticks to simulate per scenario")
	flaggy.Int(&seeds, "s", "seeds", "number of seeds per parameter set")
	flaggy.Int(&workers, "w", "workers", "number of worker goroutines")
	flaggy.Parse()

	penaltyOptions := []float64{0.3, 0.4, 0.5}
	seedBaseOptions := []float64{8, 10, 14}

	var sets []paramSet
	for _, penalty := range penaltyOptions {
		for _, base := range seedBaseOptions {
			for s := 0; s < seeds; s++ {
				sets = append(sets, paramSet{
					seed:        int64(1000 + s),
					soilPenalty: penalty,
					seedBase:    base,
				})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d ticks)\n", len(sets), workers, ticks)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, ticks)
			}
		}()
	}

	go func() {
		for _, set := range sets {
			jobs <- set
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].finalTrees > all[j].finalTrees
	})

	fmt.Printf("%-40s %8s %8s %8s %8s %8s %10s %8s\n",
		"params", "final", "peak", "mature", "dead", "grass", "avgLight", "dropped")
	for _, res := range all {
		fmt.Printf("%-40s %8d %8d %8d %8d %8d %10.3f %8d\n",
			res.params,
			res.finalTrees,
			res.peakTrees,
			res.matureFinal,
			res.deadFinal,
			res.grassFinal,
			res.avgLight,
			res.dropped,
		)
	}
}

func runScenario(params paramSet, ticks int) scenarioResult {
	cfg := forest.DefaultConfig()
	cfg.Seed = params.seed
	cfg.Params.SoilPenalty = params.soilPenalty
	cfg.Params.SeedChanceBase = params.seedBase

	world := forest.NewWithConfig(cfg)
	world.Reset(params.seed)

	in := core.Input{DT: 1.0 / 60}
	peak := world.TreeCount()
	for i := 0; i < ticks; i++ {
		world.Update(in)
		if total := world.TreeCount(); total > peak {
			peak = total
		}
	}

	census := world.Census()
	grass := 0
	lightSum := 0.0
	for i, c := range world.CoverGrid() {
		if c == forest.CoverGrass {
			grass++
		}
		lightSum += world.LightGrid()[i]
	}

	return scenarioResult{
		params:      params,
		finalTrees:  world.TreeCount(),
		peakTrees:   peak,
		matureFinal: census[forest.StageMature],
		deadFinal:   census[forest.StageSnag] + census[forest.StageStump],
		grassFinal:  grass,
		avgLight:    lightSum / float64(forest.GridSize),
		dropped:     world.DroppedEvents(),
	}
}
