package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 40, G: 50, B: 60, A: 255},
	}
	cells := []uint8{0, 1, 9} // out-of-range index clamps to the last entry
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	if buf[0] != 10 || buf[1] != 20 || buf[2] != 30 || buf[3] != 255 {
		t.Fatalf("cell 0 mismatch: %v", buf[0:4])
	}
	if buf[4] != 40 || buf[5] != 50 || buf[6] != 60 {
		t.Fatalf("cell 1 mismatch: %v", buf[4:8])
	}
	if buf[8] != 40 || buf[9] != 50 || buf[10] != 60 {
		t.Fatalf("out-of-range cell should clamp to last entry: %v", buf[8:12])
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	cells := []uint8{3, 1}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	fillPaletteRGBA(buf, cells, nil)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d should be cleared, got %d", i, b)
		}
	}
}

func TestFillShadedRGBAModulatesBrightness(t *testing.T) {
	palette := []color.RGBA{{R: 100, G: 200, B: 50, A: 255}}
	cells := []uint8{0, 0}
	light := []float64{1.0, 0.0}
	buf := make([]byte, 4*len(cells))

	fillShadedRGBA(buf, cells, light, palette)

	// Full light leaves the colour untouched.
	if buf[0] != 100 || buf[1] != 200 || buf[2] != 50 {
		t.Fatalf("full light should not change the colour: %v", buf[0:4])
	}
	// Zero light darkens to the floor, never to black.
	if buf[4] != 40 || buf[5] != 80 || buf[6] != 20 {
		t.Fatalf("zero light should darken to the floor: %v", buf[4:8])
	}
	// Alpha is never modulated.
	if buf[3] != 255 || buf[7] != 255 {
		t.Fatalf("alpha must stay opaque: %d %d", buf[3], buf[7])
	}
}

func TestFillShadedRGBAFallsBackOnMismatch(t *testing.T) {
	palette := []color.RGBA{{R: 100, G: 100, B: 100, A: 255}}
	cells := []uint8{0, 0}
	buf := make([]byte, 4*len(cells))

	fillShadedRGBA(buf, cells, []float64{0.5}, palette)

	if buf[0] != 100 || buf[4] != 100 {
		t.Fatalf("mismatched light grid should fall back to the plain fill: %v", buf)
	}
}
