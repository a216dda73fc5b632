package forest

import "math"

// Vec2 is a 2D vector in continuous tile units.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSq returns the squared length of v.
func (v Vec2) LengthSq() float64 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSq()) }

// TileCoord identifies a grid cell. Values outside [0, GridDim) are legal
// for intermediate arithmetic; only planting and indexing require bounds.
type TileCoord struct {
	X int
	Y int
}

// WorldPosition is a hybrid position: an integer tile coordinate plus a
// fractional offset inside that tile. A normalized position keeps the
// offset within [0,1) on both axes.
type WorldPosition struct {
	Coord  TileCoord
	Offset Vec2
}

// Normalize carries the integer part of the offset into the tile
// coordinate, using floor so negative offsets borrow correctly. The real
// position (coord + offset) is unchanged.
func (p WorldPosition) Normalize() WorldPosition {
	fx := math.Floor(p.Offset.X)
	fy := math.Floor(p.Offset.Y)
	return WorldPosition{
		Coord:  TileCoord{X: p.Coord.X + int(fx), Y: p.Coord.Y + int(fy)},
		Offset: Vec2{X: p.Offset.X - fx, Y: p.Offset.Y - fy},
	}
}

// Add returns the normalized sum of two world positions.
func (p WorldPosition) Add(o WorldPosition) WorldPosition {
	return WorldPosition{
		Coord:  TileCoord{X: p.Coord.X + o.Coord.X, Y: p.Coord.Y + o.Coord.Y},
		Offset: p.Offset.Add(o.Offset),
	}.Normalize()
}

// Sub returns the normalized difference of two world positions.
func (p WorldPosition) Sub(o WorldPosition) WorldPosition {
	return WorldPosition{
		Coord:  TileCoord{X: p.Coord.X - o.Coord.X, Y: p.Coord.Y - o.Coord.Y},
		Offset: p.Offset.Sub(o.Offset),
	}.Normalize()
}

// AddOffset returns the position shifted by a plain tile-space offset,
// normalized.
func (p WorldPosition) AddOffset(o Vec2) WorldPosition {
	return WorldPosition{Coord: p.Coord, Offset: p.Offset.Add(o)}.Normalize()
}

// SubOffset returns the position shifted by the negated offset, normalized.
func (p WorldPosition) SubOffset(o Vec2) WorldPosition {
	return WorldPosition{Coord: p.Coord, Offset: p.Offset.Sub(o)}.Normalize()
}

// DistanceSq returns the squared Euclidean distance to o in tile units.
func (p WorldPosition) DistanceSq(o WorldPosition) float64 {
	d := o.Sub(p)
	dx := float64(d.Coord.X) + d.Offset.X
	dy := float64(d.Coord.Y) + d.Offset.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to o in tile units.
func (p WorldPosition) Distance(o WorldPosition) float64 {
	return math.Sqrt(p.DistanceSq(o))
}

// Real returns the continuous tile-space coordinates of p.
func (p WorldPosition) Real() (float64, float64) {
	return float64(p.Coord.X) + p.Offset.X, float64(p.Coord.Y) + p.Offset.Y
}
