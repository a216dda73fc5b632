package forest

import "math"

// shadeScanRadius bounds the neighbourhood scanned when rebuilding a
// tree's shade from scratch. It only needs to exceed the largest shadow
// radius in the species catalog.
const shadeScanRadius = 1.0

// smoothstep is the quintic Hermite ease between edge0 and edge1.
// Callers pass edge0=shadowRadius, edge1=0 so the result is 1 at the
// centre of a canopy and fades to 0 at its rim.
func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * t * (t*(t*6-15) + 10)
}

// occlusion returns the light fraction a canopy of the given radius lets
// through at the given distance. Radius must be > 0: a zero radius makes
// smoothstep degenerate and flip.
func occlusion(shadowRadius, distance float64) float64 {
	return 1 - smoothstep(shadowRadius, 0, distance)
}

// recomputeShade rebuilds the shade factor of one tree from scratch by
// scanning every neighbour within shadeScanRadius and multiplying in each
// overlapping canopy's occlusion. Always restarts from 1.0, so repeated
// calls are idempotent.
func (w *World) recomputeShade(slot int) {
	target := w.trees.At(slot)
	if target == nil {
		return
	}
	pos := target.Position

	shade := 1.0
	w.trees.ForEachInRadius(pos, shadeScanRadius, func(nearSlot int, near *Tree) {
		if nearSlot == slot {
			return // a tree does not shade itself
		}
		shadowRadius := near.Species.ShadowRadius(near.Stage)
		if shadowRadius <= 0 {
			return
		}
		distance := pos.Distance(near.Position)
		if distance <= shadowRadius {
			shade *= occlusion(shadowRadius, distance)
		}
	})

	target.ShadeFactor = shade
}

// propagateStageChange incrementally fixes up the neighbours of a tree
// whose growth stage (and therefore shadow radius) just changed: the old
// canopy's contribution is divided back out, then the new one multiplied
// in. The tree's own shade factor is untouched. The undo division is
// unclamped: the transmitted fraction tends to zero for a neighbour right
// under the canopy centre, which makes the division unstable there. Trees
// never share an exact position, so the denominator stays nonzero.
func (w *World) propagateStageChange(slot int, previousStage GrowthStage) {
	t := w.trees.At(slot)
	if t == nil {
		return
	}
	pos := t.Position
	oldRadius := t.Species.ShadowRadius(previousStage)
	newRadius := t.Species.ShadowRadius(t.Stage)
	maxRadius := math.Max(oldRadius, newRadius)

	w.trees.ForEachInRadius(pos, maxRadius, func(nearSlot int, near *Tree) {
		if nearSlot == slot {
			return
		}
		distance := pos.Distance(near.Position)

		if oldRadius > 0 && distance <= oldRadius {
			near.ShadeFactor /= occlusion(oldRadius, distance)
		}
		if newRadius > 0 && distance <= newRadius {
			near.ShadeFactor *= occlusion(newRadius, distance)
		}
	})
}
