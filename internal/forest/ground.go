package forest

// dirtLightThreshold is the light level at or below which grass dies off.
const dirtLightThreshold = 0.25

// Per-stage canopy light absorption, folded multiplicatively over every
// tree on a tile. Stages outside the table cast no ground-level shade.
const (
	seedlingAbsorption = 0.01
	saplingAbsorption  = 0.1
	canopyAbsorption   = 0.5
)

// grassRegrowthChance maps the number of grassy neighbours to the per-tick
// probability that a dirt tile regrows.
func grassRegrowthChance(grassy int) float64 {
	switch {
	case grassy == 1:
		return 0.00001
	case grassy == 2:
		return 0.00005
	case grassy >= 3 && grassy <= 5:
		return 0.0001
	case grassy >= 6 && grassy <= 8:
		return 0.0004
	default:
		return 0
	}
}

// updateGround recomputes per-tile light from the canopy, then steps the
// grass/dirt automaton into a fresh cover grid so every tile sees the same
// generation of neighbours.
func (w *World) updateGround() {
	next := w.cover

	for x := 0; x < GridDim; x++ {
		for y := 0; y < GridDim; y++ {
			tile := TileIndex(x, y)

			light := 1.0
			w.trees.ForEachOnTile(tile, func(_ int, t *Tree) {
				switch t.Stage {
				case StageSeedling:
					light *= 1 - seedlingAbsorption
				case StageSapling:
					light *= 1 - saplingAbsorption
				case StageMature, StageOld:
					light *= 1 - canopyAbsorption
				}
			})
			w.light[tile] = light

			if light <= dirtLightThreshold {
				next[tile] = CoverDirt
				continue
			}
			if w.cover[tile] != CoverDirt {
				continue
			}

			grassy := 0
			for nx := x - 1; nx <= x+1; nx++ {
				for ny := y - 1; ny <= y+1; ny++ {
					// The self-skip compares absolute coordinates, so the
					// whole nx == ny diagonal is excluded from the count,
					// not just the centre tile.
					if nx == ny {
						continue
					}
					if nx < 0 || nx >= GridDim || ny < 0 || ny >= GridDim {
						continue
					}
					if w.cover[TileIndex(nx, ny)] == CoverGrass {
						grassy++
					}
				}
			}

			if w.rng.Float64() > 1-grassRegrowthChance(grassy) {
				next[tile] = CoverGrass
			}
		}
	}

	w.cover = next
}
