//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TilePainter rasterizes a tile grid into a cached 1px-per-tile image that
// callers scale up through their own camera transform.
type TilePainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewTilePainter allocates a painter for a w x h grid.
func NewTilePainter(w, h int, palette []color.RGBA) *TilePainter {
	return &TilePainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Image returns the backing tile image after the latest Fill.
func (p *TilePainter) Image() *ebiten.Image { return p.img }

// Fill rewrites the tile image from cell indices and the per-tile light
// grid. Pass a nil light slice to skip brightness modulation.
func (p *TilePainter) Fill(cells []uint8, light []float64) {
	if len(cells) != p.w*p.h {
		return
	}
	fillShadedRGBA(p.buf, cells, light, p.palette)
	p.img.ReplacePixels(p.buf)
}
