package forest

import (
	"math"
	"testing"
)

func TestNormalizeCarriesPositiveOverflow(t *testing.T) {
	p := WorldPosition{
		Coord:  TileCoord{X: 2, Y: 3},
		Offset: Vec2{X: 1.25, Y: 2.5},
	}.Normalize()

	if p.Coord.X != 3 || p.Coord.Y != 5 {
		t.Fatalf("expected coord (3,5), got (%d,%d)", p.Coord.X, p.Coord.Y)
	}
	if math.Abs(p.Offset.X-0.25) > 1e-12 || math.Abs(p.Offset.Y-0.5) > 1e-12 {
		t.Fatalf("expected offset (0.25,0.5), got (%f,%f)", p.Offset.X, p.Offset.Y)
	}
}

func TestNormalizeCarriesNegativeOverflow(t *testing.T) {
	p := WorldPosition{
		Coord:  TileCoord{X: 2, Y: 3},
		Offset: Vec2{X: -0.5, Y: -1.25},
	}.Normalize()

	if p.Coord.X != 1 || p.Coord.Y != 1 {
		t.Fatalf("expected coord (1,1), got (%d,%d)", p.Coord.X, p.Coord.Y)
	}
	if math.Abs(p.Offset.X-0.5) > 1e-12 || math.Abs(p.Offset.Y-0.75) > 1e-12 {
		t.Fatalf("expected offset (0.5,0.75), got (%f,%f)", p.Offset.X, p.Offset.Y)
	}
}

func TestNormalizeNoopWhenInRange(t *testing.T) {
	p := WorldPosition{
		Coord:  TileCoord{X: 7, Y: 8},
		Offset: Vec2{X: 0, Y: 0.9999},
	}
	if got := p.Normalize(); got != p {
		t.Fatalf("expected position unchanged, got %+v", got)
	}
}

func TestAddOffsetCrossesTileBoundary(t *testing.T) {
	p := WorldPosition{
		Coord:  TileCoord{X: 4, Y: 4},
		Offset: Vec2{X: 0.9, Y: 0.1},
	}
	got := p.AddOffset(Vec2{X: 0.3, Y: -0.2})

	if got.Coord.X != 5 || got.Coord.Y != 3 {
		t.Fatalf("expected coord (5,3), got (%d,%d)", got.Coord.X, got.Coord.Y)
	}
	wantX, wantY := 0.2, 0.9
	if math.Abs(got.Offset.X-wantX) > 1e-9 || math.Abs(got.Offset.Y-wantY) > 1e-9 {
		t.Fatalf("expected offset (%.1f,%.1f), got (%f,%f)", wantX, wantY, got.Offset.X, got.Offset.Y)
	}
}

func TestDistanceAcrossTiles(t *testing.T) {
	a := WorldPosition{Coord: TileCoord{X: 1, Y: 1}, Offset: Vec2{X: 0.9, Y: 0.5}}
	b := WorldPosition{Coord: TileCoord{X: 2, Y: 1}, Offset: Vec2{X: 0.1, Y: 0.5}}

	if d := a.Distance(b); math.Abs(d-0.2) > 1e-9 {
		t.Fatalf("expected distance 0.2, got %f", d)
	}
	if d := b.Distance(a); math.Abs(d-0.2) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %f", d)
	}
	if d := a.Distance(a); d != 0 {
		t.Fatalf("expected zero self-distance, got %f", d)
	}
}

func TestRealMatchesComponents(t *testing.T) {
	p := WorldPosition{Coord: TileCoord{X: 12, Y: 3}, Offset: Vec2{X: 0.75, Y: 0.25}}
	x, y := p.Real()
	if math.Abs(x-12.75) > 1e-12 || math.Abs(y-3.25) > 1e-12 {
		t.Fatalf("expected (12.75,3.25), got (%f,%f)", x, y)
	}
}
