package forest

import (
	"log"
	"math"

	"canopy/internal/core"
)

// Camera is the simulation-owned view state, panned and zoomed from the
// per-tick input flags. X/Y are in tile units; Zoom is the number of tiles
// visible along the vertical axis.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
}

// DebugFlags mirror the display toggles carried by the input snapshot.
type DebugFlags struct {
	ShowGrid  bool
	ShowDual  bool
	ShowTrees bool
}

const (
	cameraZoomMin = 1.5
	cameraZoomMax = 30.0
)

// Display palette indices exposed through Cells().
const (
	CellDirt uint8 = iota
	CellDirtStony
	CellGrass
	CellGrassStony
)

type eventKind uint8

const (
	eventPlant eventKind = iota
	eventKill
	eventDelete
)

// treeEvent is one deferred mutation collected during the scan phase.
// Plant events carry pos/species; kill and delete carry the slot.
type treeEvent struct {
	kind    eventKind
	slot    int
	pos     WorldPosition
	species Species
}

// maxEvents is the soft cap on deferred events per tick. Overflow is
// dropped and counted, never an error.
const maxEvents = MaxTrees

// World holds the complete state of the forest simulation: the terrain
// layers, the tree store, the camera, and the RNG stream. All mutation
// happens inside a single-threaded Update call; between calls the state is
// safe to read.
type World struct {
	cfg Config

	camera Camera
	debug  DebugFlags
	paused bool

	cover [GridSize]Cover
	soil  [GridSize]Soil
	light [GridSize]float64

	trees TreeStore

	rng core.Rand

	events        []treeEvent
	repack        map[int]struct{}
	droppedEvents uint64
	shadeDrift    uint64

	marks   []core.TreeMark
	display []uint8
	tick    uint64
	seed    int64
}

// New returns a forest world using the default configuration. Call Reset
// before the first Update.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a forest world configured from the provided
// options. Call Reset before the first Update.
func NewWithConfig(cfg Config) *World {
	return &World{
		cfg:     cfg,
		rng:     core.NewRand(cfg.Seed),
		repack:  make(map[int]struct{}),
		display: make([]uint8, GridSize),
		seed:    cfg.Seed,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: GridDim, H: GridDim} }

// Cells exposes the current display buffer (palette indices).
func (w *World) Cells() []uint8 { return w.display }

// LightGrid exposes the per-tile light amounts computed last tick.
func (w *World) LightGrid() []float64 { return w.light[:] }

// CoverGrid exposes the active ground-cover layer.
func (w *World) CoverGrid() []Cover { return w.cover[:] }

// SoilGrid exposes the immutable soil layer.
func (w *World) SoilGrid() []Soil { return w.soil[:] }

// Camera returns the current view state.
func (w *World) Camera() Camera { return w.camera }

// View reports the camera as plain components for render layers that do
// not know the Camera type.
func (w *World) View() (x, y, zoom float64) {
	return w.camera.X, w.camera.Y, w.camera.Zoom
}

// Debug returns the current debug-layer toggles.
func (w *World) Debug() DebugFlags { return w.debug }

// Paused reports whether the last Update skipped the simulation step.
func (w *World) Paused() bool { return w.paused }

// Tick returns the number of completed simulation steps since Reset.
func (w *World) Tick() uint64 { return w.tick }

// TreeCount returns the live total of occupied tree slots.
func (w *World) TreeCount() int { return w.trees.Total() }

// TileTreeCount returns the occupancy of one tile's bucket.
func (w *World) TileTreeCount(tile int) int { return w.trees.Count(tile) }

// DroppedEvents returns how many deferred events overflowed the per-tick
// buffer since Reset.
func (w *World) DroppedEvents() uint64 { return w.droppedEvents }

// TreeMarks returns renderable snapshots of every tree, reusing an
// internal buffer that is valid until the next call.
func (w *World) TreeMarks() []core.TreeMark {
	w.marks = w.marks[:0]
	for tile := 0; tile < GridSize; tile++ {
		w.trees.ForEachOnTile(tile, func(_ int, t *Tree) {
			x, y := t.Position.Real()
			w.marks = append(w.marks, core.TreeMark{
				X:       x,
				Y:       y,
				Species: uint8(t.Species),
				Stage:   uint8(t.Stage),
				Alive:   t.Alive(),
			})
		})
	}
	return w.marks
}

// Census counts trees per growth stage.
func (w *World) Census() [stageCount]int {
	var c [stageCount]int
	for tile := 0; tile < GridSize; tile++ {
		w.trees.ForEachOnTile(tile, func(_ int, t *Tree) {
			c[t.Stage]++
		})
	}
	return c
}

// Reset rebuilds the initial world deterministically: grass everywhere,
// stony soil on the first half of the grid, and the configured number of
// starter tree pairs planted on two band rows. A zero seed falls back to
// the config seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	w.rng = core.NewRand(effective)

	for i := 0; i < GridSize; i++ {
		w.cover[i] = CoverGrass
		if i < GridSize/2 {
			w.soil[i] = SoilStony
		} else {
			w.soil[i] = SoilNormal
		}
		w.light[i] = 1.0
	}

	w.trees.Clear()
	w.events = w.events[:0]
	clear(w.repack)
	w.droppedEvents = 0
	w.shadeDrift = 0
	w.tick = 0
	w.paused = false

	w.camera = Camera{
		X:    GridDim * 0.5,
		Y:    GridDim * 0.5,
		Zoom: 20.0,
	}

	bandRows := [2]int{GridDim / 3, (GridDim / 3) * 2}
	for i := 0; i < w.cfg.Params.InitialTreePairs; i++ {
		for _, row := range bandRows {
			pos := WorldPosition{
				Coord:  TileCoord{X: w.rng.IntN(GridDim), Y: row},
				Offset: Vec2{X: w.rng.Float64(), Y: w.rng.Float64()},
			}
			w.plantTree(pos, Species(w.rng.IntN(int(speciesCount))))
		}
	}

	w.refreshDisplay()
}

// Update advances the world by one tick: camera and debug flags first (so
// the view responds while paused), then the tree pass, then the
// ground-cover automaton.
func (w *World) Update(in core.Input) {
	w.stepCamera(in)
	w.debug = DebugFlags{
		ShowGrid:  in.ShowGrid,
		ShowDual:  in.ShowDual,
		ShowTrees: in.ShowTrees,
	}

	w.paused = in.Pause
	if w.paused {
		return
	}

	w.updateTrees(in.DT)
	w.updateGround()
	w.tick++
	w.refreshDisplay()
}

func (w *World) stepCamera(in core.Input) {
	speed := w.cfg.Params.PanSpeed * w.camera.Zoom
	if in.Left {
		w.camera.X -= speed
	}
	if in.Right {
		w.camera.X += speed
	}
	if in.Up {
		w.camera.Y -= speed
	}
	if in.Down {
		w.camera.Y += speed
	}

	zoomDir := 0.0
	if in.ZoomIn {
		zoomDir = -1.0
	} else if in.ZoomOut {
		zoomDir = 1.0
	}
	w.camera.Zoom += w.cfg.Params.ZoomStep * zoomDir * w.camera.Zoom
	if w.camera.Zoom > cameraZoomMax {
		w.camera.Zoom = cameraZoomMax
	}
	if w.camera.Zoom < cameraZoomMin {
		w.camera.Zoom = cameraZoomMin
	}
}

// updateTrees runs the scan / apply / repack phases of the tree pass. The
// scan never inserts or deletes: every structural change is queued as an
// event and applied only after the full iteration, so bucket iteration
// bounds stay valid throughout.
func (w *World) updateTrees(dt float64) {
	w.events = w.events[:0]
	dropped := 0
	push := func(e treeEvent) {
		if len(w.events) >= maxEvents {
			dropped++
			return
		}
		w.events = append(w.events, e)
	}

	for tile := 0; tile < GridSize; tile++ {
		count := w.trees.Count(tile)
		soil := w.soil[tile]

		for sub := 0; sub < count; sub++ {
			slot := tile*TreesPerTile + sub
			tree := w.trees.At(slot)
			if tree == nil {
				continue
			}

			soilMultiplier := 1.0
			if soil != tree.Species.SoilPreference() {
				soilMultiplier = w.cfg.Params.SoilPenalty
			}

			// Decay is not slowed by shade or soil: only living trees
			// take the combined multiplier.
			growthMultiplier := 1.0
			if tree.Alive() {
				growthMultiplier = tree.ShadeFactor * soilMultiplier
			}

			if growthMultiplier <= w.cfg.Params.MinViability {
				push(treeEvent{kind: eventKill, slot: slot})
				continue
			}

			oldShade := tree.ShadeFactor
			oldStage := tree.Stage
			newStage := tree.Grow(dt * growthMultiplier)

			if oldStage != newStage {
				w.propagateStageChange(slot, oldStage)
				if tree.ShadeFactor != oldShade {
					// A stage change must never move the tree's own shade;
					// if it does, the incremental update disagrees with a
					// full recompute somewhere.
					w.shadeDrift++
					log.Printf("forest: tree %d shade drifted %.6f -> %.6f on %v -> %v",
						slot, oldShade, tree.ShadeFactor, oldStage, newStage)
				}
			}

			switch newStage {
			case StageMature, StageOld, StageDecline:
				if tree.SeedTimer <= 0 {
					w.trySeed(tree, soil, push)
				}
			case StageStump:
				if w.rng.IntN(w.cfg.Params.StumpRemovalDenom) == 0 {
					push(treeEvent{kind: eventDelete, slot: slot})
				}
			}
		}
	}

	for _, e := range w.events {
		switch e.kind {
		case eventPlant:
			w.plantTree(e.pos, e.species)
		case eventKill:
			// Register the tile up front: the kill may turn into an
			// immediate delete for very young trees.
			w.repack[slotTile(e.slot)] = struct{}{}
			w.killTree(e.slot)
		case eventDelete:
			w.repack[slotTile(e.slot)] = struct{}{}
			w.trees.Delete(e.slot)
		}
	}

	for tile := range w.repack {
		w.trees.Compact(tile)
	}
	clear(w.repack)

	if dropped > 0 {
		w.droppedEvents += uint64(dropped)
		log.Printf("forest: event buffer full, dropped %d events this tick", dropped)
	}
}

// seedStageMultiplier makes mature trees the cheapest seeders and
// declining trees the most expensive.
func seedStageMultiplier(stage GrowthStage) float64 {
	switch stage {
	case StageMature:
		return 1.0
	case StageOld:
		return 0.5
	case StageDecline:
		return 0.2
	default:
		return 0
	}
}

// trySeed runs the configured number of independent seeding trials for a
// tree whose seed timer has expired. Each success scatters one seed at a
// uniform angle and radius, queues a plant event when the landing tile is
// on the grid, and redraws the seed timer.
func (w *World) trySeed(tree *Tree, soil Soil, push func(treeEvent)) {
	multiplier := seedStageMultiplier(tree.Stage)
	if multiplier <= 0 {
		return
	}

	denominator := int(w.cfg.Params.SeedChanceBase * (1.0 / multiplier))
	if soil != tree.Species.SoilPreference() {
		denominator *= 2
	}

	minRadius, maxRadius := tree.Species.SeedRadius()

	for trial := 0; trial < w.cfg.Params.SeedTrials; trial++ {
		if w.rng.IntN(denominator) != 0 {
			continue
		}

		angle := w.rng.Float64() * 360 * math.Pi / 180
		radius := minRadius + w.rng.Float64()*(maxRadius-minRadius)
		offset := Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}

		plantPos := tree.Position.AddOffset(offset)
		if InBounds(plantPos.Coord) {
			push(treeEvent{kind: eventPlant, pos: plantPos, species: tree.Species})
		}

		rate := tree.Species.SeedSuccessRate()
		tree.SeedTimer = rate.Average - rate.Variation + w.rng.Float64()*2*rate.Variation
	}
}

// plantTree inserts a tree and computes its initial shade from the
// neighbourhood. Planting into a full tile is a silent no-op.
func (w *World) plantTree(pos WorldPosition, species Species) {
	slot, ok := w.trees.Plant(pos, species)
	if !ok {
		return
	}
	w.recomputeShade(slot)
}

// killTree applies the kill policy: trees still in their first two stages
// vanish outright; anything older becomes a snag and restarts its growth
// clock against the snag decay requirement. Already-dead trees are left
// alone.
func (w *World) killTree(slot int) {
	t := w.trees.At(slot)
	if t == nil {
		return
	}
	switch {
	case t.Stage <= StageSeedling:
		w.trees.Delete(slot)
	case t.Stage <= StageDecline:
		t.Stage = StageSnag
		t.GrowthTarget, t.HasGrowthTarget = t.Species.GrowthRequired(StageSnag)
	}
}

func (w *World) refreshDisplay() {
	for i := 0; i < GridSize; i++ {
		v := CellDirt
		if w.cover[i] == CoverGrass {
			v = CellGrass
		}
		if w.soil[i] == SoilStony {
			v++
		}
		w.display[i] = v
	}
}

func init() {
	core.Register("forest", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
