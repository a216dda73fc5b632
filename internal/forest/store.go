package forest

// Grid geometry. The world is a fixed GridDim×GridDim square of tiles and
// every tile owns a bucket of TreesPerTile slots, so the whole population
// lives in one flat arena addressed by (tile index, in-bucket index).
const (
	GridDim      = 30
	GridSize     = GridDim * GridDim
	TreesPerTile = 10
	MaxTrees     = GridSize * TreesPerTile
)

// TileIndex returns the row-major tile index for grid coordinates (x, y).
func TileIndex(x, y int) int { return y*GridDim + x }

// InBounds reports whether a tile coordinate lies on the grid.
func InBounds(c TileCoord) bool {
	return c.X >= 0 && c.X < GridDim && c.Y >= 0 && c.Y < GridDim
}

// slotTile recovers the tile index from a global slot index.
func slotTile(slot int) int { return slot / TreesPerTile }

// cellBucket owns the tree slots of a single tile and maintains the
// packed-front invariant: the count occupied slots sit at indices
// 0..count-1. Deleting punches a hole without touching count; Compact
// restores the invariant and must run before the bucket is iterated by
// count again. All mutation goes through these methods, so the invariant
// cannot be broken from outside the type.
type cellBucket struct {
	trees [TreesPerTile]Tree
	used  [TreesPerTile]bool
	count int
}

// tryInsert appends a tree at the packed front. Returns the in-bucket
// index, or ok=false when the bucket is full. Fullness caps local density
// and is not an error.
func (b *cellBucket) tryInsert(t Tree) (int, bool) {
	if b.count >= TreesPerTile {
		return 0, false
	}
	i := b.count
	b.trees[i] = t
	b.used[i] = true
	b.count++
	return i, true
}

// clear empties a slot. count is intentionally left stale so that slot
// indices held by in-flight events stay valid; Compact repairs it.
func (b *cellBucket) clear(i int) {
	b.used[i] = false
}

// compact swaps occupied slots forward over holes with a two-pointer pass
// and rewrites count. Idempotent: safe to call when nothing was deleted.
func (b *cellBucket) compact() {
	write := 0
	for read := 0; read < TreesPerTile; read++ {
		if !b.used[read] {
			continue
		}
		if read != write {
			b.trees[write] = b.trees[read]
			b.used[write] = true
			b.used[read] = false
		}
		write++
	}
	b.count = write
}

// TreeStore is the fixed-capacity spatial index over all trees: GridSize
// contiguous buckets of TreesPerTile slots. Buckets are disjoint, so
// callbacks handed *Tree pointers for different slots never alias.
type TreeStore struct {
	cells [GridSize]cellBucket
	total int
}

// Total returns the number of occupied slots across the grid.
func (s *TreeStore) Total() int { return s.total }

// Count returns the recorded occupancy of one tile's bucket.
func (s *TreeStore) Count(tile int) int { return s.cells[tile].count }

// At returns the tree in a global slot, or nil when the slot is empty.
func (s *TreeStore) At(slot int) *Tree {
	b := &s.cells[slotTile(slot)]
	i := slot % TreesPerTile
	if !b.used[i] {
		return nil
	}
	return &b.trees[i]
}

// Plant writes a new tree of the given species into the bucket of the
// tile pos resolves to. The position must already be in bounds. Returns
// the global slot index, or ok=false when the tile is full (silent no-op).
func (s *TreeStore) Plant(pos WorldPosition, species Species) (int, bool) {
	tile := TileIndex(pos.Coord.X, pos.Coord.Y)
	i, ok := s.cells[tile].tryInsert(NewTree(species, pos))
	if !ok {
		return 0, false
	}
	s.total++
	return tile*TreesPerTile + i, true
}

// Delete empties a slot. A batch of deletions on a tile must be followed
// by Compact on that tile before its bucket is iterated again.
func (s *TreeStore) Delete(slot int) {
	b := &s.cells[slotTile(slot)]
	i := slot % TreesPerTile
	if !b.used[i] {
		return
	}
	b.clear(i)
	s.total--
}

// Compact restores the packed-front invariant on one tile's bucket.
func (s *TreeStore) Compact(tile int) {
	s.cells[tile].compact()
}

// Clear empties every bucket.
func (s *TreeStore) Clear() {
	for i := range s.cells {
		s.cells[i] = cellBucket{}
	}
	s.total = 0
}

// ForEachOnTile visits the packed slots of one tile in slot order. The
// bucket's invariant must hold (it always does between ticks).
func (s *TreeStore) ForEachOnTile(tile int, fn func(slot int, t *Tree)) {
	b := &s.cells[tile]
	base := tile * TreesPerTile
	for i := 0; i < b.count; i++ {
		if !b.used[i] {
			continue
		}
		fn(base+i, &b.trees[i])
	}
}

// ForEachInRegion scans the inclusive tile box [minX..maxX]×[minY..maxY]
// row-major and visits every occupied slot. Unlike ForEachOnTile it checks
// all TreesPerTile slots per bucket, so it tolerates un-compacted holes.
func (s *TreeStore) ForEachInRegion(minX, minY, maxX, maxY int, fn func(slot int, t *Tree)) {
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			tile := TileIndex(x, y)
			b := &s.cells[tile]
			base := tile * TreesPerTile
			for i := 0; i < TreesPerTile; i++ {
				if !b.used[i] {
					continue
				}
				fn(base+i, &b.trees[i])
			}
		}
	}
}

// ForEachInRadius visits every tree within radius tile units of pos. The
// bounding tile box is clamped to the grid, then candidates are filtered
// by squared distance. A radius of zero or less yields nothing.
func (s *TreeStore) ForEachInRadius(pos WorldPosition, radius float64, fn func(slot int, t *Tree)) {
	if radius <= 0 {
		return
	}

	r := Vec2{X: radius, Y: radius}
	min := pos.SubOffset(r)
	max := pos.AddOffset(r)

	minX, minY := min.Coord.X, min.Coord.Y
	maxX, maxY := max.Coord.X, max.Coord.Y
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > GridDim-1 {
		maxX = GridDim - 1
	}
	if maxY > GridDim-1 {
		maxY = GridDim - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	r2 := radius * radius
	s.ForEachInRegion(minX, minY, maxX, maxY, func(slot int, t *Tree) {
		if t.Position.DistanceSq(pos) <= r2 {
			fn(slot, t)
		}
	})
}
