package render

import (
	"image/color"

	"canopy/internal/forest"
)

// TilePalette maps the forest display cell indices to ground colours.
func TilePalette() []color.RGBA {
	palette := make([]color.RGBA, 4)
	palette[forest.CellDirt] = color.RGBA{R: 126, G: 90, B: 58, A: 255}
	palette[forest.CellDirtStony] = color.RGBA{R: 128, G: 112, B: 96, A: 255}
	palette[forest.CellGrass] = color.RGBA{R: 88, G: 148, B: 68, A: 255}
	palette[forest.CellGrassStony] = color.RGBA{R: 104, G: 138, B: 88, A: 255}
	return palette
}

// SpeciesColor returns the marker colour for a tree of the given species
// index; dead trees render in a common deadwood grey.
func SpeciesColor(species uint8, alive bool) color.RGBA {
	if !alive {
		return color.RGBA{R: 110, G: 100, B: 92, A: 255}
	}
	switch species {
	case uint8(forest.SpeciesAsh):
		return color.RGBA{R: 44, G: 96, B: 42, A: 255}
	case uint8(forest.SpeciesFir):
		return color.RGBA{R: 24, G: 68, B: 52, A: 255}
	default: // cottonwood
		return color.RGBA{R: 70, G: 120, B: 46, A: 255}
	}
}
