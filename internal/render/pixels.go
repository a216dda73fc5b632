package render

import "image/color"

// Light below 1.0 darkens a tile toward this floor so heavily shaded
// ground stays readable instead of going black.
const (
	shadeFloor = 0.4
	shadeRange = 0.6
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillShadedRGBA is fillPaletteRGBA with a per-cell brightness taken from
// the light grid. A nil or mismatched light slice falls back to the plain
// palette fill.
func fillShadedRGBA(buf []byte, cells []uint8, light []float64, palette []color.RGBA) {
	if len(light) != len(cells) {
		fillPaletteRGBA(buf, cells, palette)
		return
	}
	if len(palette) == 0 {
		fillPaletteRGBA(buf, cells, palette)
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		factor := shadeFloor + shadeRange*clamp01(light[i])
		base := i * 4
		col := palette[idx]
		buf[base+0] = scaleComponent(col.R, factor)
		buf[base+1] = scaleComponent(col.G, factor)
		buf[base+2] = scaleComponent(col.B, factor)
		buf[base+3] = col.A
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := float64(value) * factor
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
